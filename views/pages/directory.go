package pages

import (
	"context"
	"io"

	"directory/views/components"
	"directory/views/models"

	"github.com/a-h/templ"
)

// DirectoryPage renders the full directory document. It is the Go form of
// directory.templ.
func DirectoryPage(v models.DirectoryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		write := func(s string) error {
			_, err := io.WriteString(w, s)
			return err
		}

		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>User Directory</title>` +
			`<link rel="stylesheet" href="/static/directory.css">` +
			`<script src="` + htmxSrc + `"></script></head>` +
			`<body class="bg-stone-50 text-stone-900"><main class="mx-auto max-w-6xl px-6 py-12">` +
			`<header class="mb-10"><h1 class="font-display text-4xl font-semibold">User Directory</h1>` +
			`<div class="mt-3 text-stone-600">`
		if err := write(head); err != nil {
			return err
		}
		if err := templ.Raw(v.IntroHTML).Render(ctx, w); err != nil {
			return err
		}

		stats := `</div><div class="mt-6 flex gap-4 text-sm font-semibold text-stone-600">` +
			`<span id="user-count">` + templ.EscapeString(v.UsersCount) + `</span>` +
			`<span id="album-count">` + templ.EscapeString(v.AlbumsCount) + `</span></div>` +
			`<p id="directory-status" class="mt-3 text-sm text-stone-500"`
		if v.Failed {
			stats += ` role="alert"`
		}
		stats += `>` + templ.EscapeString(v.Status) + `</p></header>`
		if err := write(stats); err != nil {
			return err
		}

		if err := components.CardGrid(v.Cards).Render(ctx, w); err != nil {
			return err
		}
		return write(`</main></body></html>`)
	})
}
