package components

import (
	"context"
	"io"
	"strconv"

	"directory/views/models"

	"github.com/a-h/templ"
)

// The components in this file are the Go form of cards.templ and are
// replaced by its generated cards_templ.go.

// htmlWriter remembers the first write error so components can stream
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// RawToggle renders the toggle button and its JSON block. The JSON is part
// of the page, so the toggle is local to the browser.
func RawToggle(v models.RawView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="mt-4" id="`)
		hw.text(RawToggleID(v.CardID))
		hw.raw(`"><button type="button" class="text-sm font-medium text-stone-700 hover:text-stone-900" aria-controls="`)
		hw.text(RawJSONID(v.CardID))
		hw.raw(`" aria-expanded="`)
		hw.text(strconv.FormatBool(v.Expanded))
		hw.raw(`" data-state="`)
		hw.text(v.State)
		hw.raw(`" data-next-state="`)
		hw.text(v.NextState)
		hw.raw(`" data-next-label="`)
		hw.text(v.NextLabel)
		hw.raw(`" hx-on:click="`)
		hw.text(rawToggleScript)
		hw.raw(`">`)
		hw.text(v.Label)
		hw.raw(`</button><pre id="`)
		hw.text(RawJSONID(v.CardID))
		hw.raw(`" class="mt-3 rounded-lg bg-white/70 p-3 text-xs leading-relaxed text-stone-700 whitespace-pre-wrap`)
		if !v.Expanded {
			hw.raw(` hidden`)
		}
		hw.raw(`">`)
		hw.text(v.JSON)
		hw.raw(`</pre></div>`)
		return hw.err
	})
}

func detail(label, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div><span class="text-stone-500">`)
		hw.text(label + ":")
		hw.raw(`</span> `)
		hw.text(value)
		hw.raw(`</div>`)
		return hw.err
	})
}

// UserCard renders one display unit.
func UserCard(card models.CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<article class="rounded-2xl border border-stone-200 bg-white/95 p-6 shadow-md" data-user-id="`)
		hw.text(strconv.Itoa(card.ID))
		hw.raw(`"><div class="flex items-start justify-between gap-4"><div><h3 class="font-display text-xl font-semibold text-stone-900">`)
		hw.text(card.Name)
		hw.raw(`</h3><p class="mt-1 text-sm text-stone-500">`)
		hw.text(card.Username)
		hw.raw(`</p></div><span class="rounded-full bg-stone-100 px-3 py-1 text-xs font-semibold uppercase tracking-[0.2em] text-stone-500">`)
		hw.text(card.Badge)
		hw.raw(`</span></div><div class="mt-4 grid gap-2 text-sm text-stone-700">`)
		if hw.err != nil {
			return hw.err
		}
		for _, d := range []templ.Component{
			detail("Email", card.Email),
			detail("Phone", card.Phone),
			detail("Website", card.Website),
			detail("Company", card.Company),
			detail("City", card.City),
		} {
			if err := d.Render(ctx, w); err != nil {
				return err
			}
		}
		hw.raw(`</div><div class="mt-5 rounded-xl bg-stone-100/80 p-4"><p class="text-xs font-semibold uppercase tracking-[0.2em] text-stone-500">`)
		hw.text("Albums (" + strconv.Itoa(card.AlbumCount) + ")")
		hw.raw(`</p><ul class="mt-3 grid gap-2 text-sm text-stone-700">`)
		if len(card.Preview) == 0 {
			hw.raw(`<li class="text-stone-500">`)
			hw.text(card.Empty)
			hw.raw(`</li>`)
		}
		for _, title := range card.Preview {
			hw.raw(`<li class="rounded-lg bg-white/80 px-3 py-2">`)
			hw.text(title)
			hw.raw(`</li>`)
		}
		hw.raw(`</ul></div>`)
		if hw.err != nil {
			return hw.err
		}
		if err := RawToggle(card.Raw).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</article>`)
		return hw.err
	})
}

// CardGrid renders every card into the directory grid container.
func CardGrid(cards []models.CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="directory-grid" class="grid gap-6 md:grid-cols-2 xl:grid-cols-3">`)
		if hw.err != nil {
			return hw.err
		}
		for _, card := range cards {
			if err := UserCard(card).Render(ctx, w); err != nil {
				return err
			}
		}
		hw.raw(`</section>`)
		return hw.err
	})
}
