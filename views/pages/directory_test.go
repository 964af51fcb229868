package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directory/views/models"
)

func TestDirectoryPage(t *testing.T) {
	view := models.DirectoryView{
		IntroHTML:   "<p>Hello <strong>there</strong></p>",
		UsersCount:  "Users: 1",
		AlbumsCount: "Albums: 0",
		Status:      "Loading directory...",
		Cards: []models.CardView{{
			ID:    1,
			Name:  "A",
			Empty: "No albums available.",
			Raw:   models.RawView{CardID: 1, State: "collapsed", Label: "View raw JSON"},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, DirectoryPage(view).Render(context.Background(), &buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<p>Hello <strong>there</strong></p>", "intro is trusted HTML")
	assert.Contains(t, html, `<span id="user-count">Users: 1</span>`)
	assert.Contains(t, html, `<p id="directory-status" class="mt-3 text-sm text-stone-500">Loading directory...</p>`)
	assert.Equal(t, 1, strings.Count(html, "<article"))
	assert.True(t, strings.HasSuffix(html, "</html>"))
}

func TestDirectoryPageFailed(t *testing.T) {
	view := models.DirectoryView{
		UsersCount:  "Users: --",
		AlbumsCount: "Albums: --",
		Status:      "Unable to load directory data.",
		Failed:      true,
	}

	var buf bytes.Buffer
	require.NoError(t, DirectoryPage(view).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), `role="alert">Unable to load directory data.</p>`)
	assert.Contains(t, buf.String(), `<section id="directory-grid" class="grid gap-6 md:grid-cols-2 xl:grid-cols-3"></section>`)
}
