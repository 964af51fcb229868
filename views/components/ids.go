package components

import "strconv"

// RawToggleID is the id of a card's raw block container.
func RawToggleID(cardID int) string {
	return "raw-" + strconv.Itoa(cardID)
}

// RawJSONID is the id of the <pre> the toggle button controls.
func RawJSONID(cardID int) string {
	return RawToggleID(cardID) + "-json"
}

// rawToggleScript swaps the button between its current and next state and
// shows the <pre> only when expanded.
const rawToggleScript = `const d = this.dataset, label = this.textContent;` +
	` this.textContent = d.nextLabel; d.nextLabel = label;` +
	` [d.state, d.nextState] = [d.nextState, d.state];` +
	` const open = d.state === 'expanded';` +
	` this.setAttribute('aria-expanded', open);` +
	` document.getElementById(this.getAttribute('aria-controls')).classList.toggle('hidden', !open)`
