package pages

// htmxSrc is the pinned HTMX build the page loads for hx-on handlers.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"
