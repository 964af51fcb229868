package directory

import "directory/views/models"

// PageView converts a load result into the page view model, with every raw
// block in the given starting state.
func PageView(res Result, introHTML string, raw RawState) models.DirectoryView {
	return models.DirectoryView{
		IntroHTML:   introHTML,
		UsersCount:  CountLabel("Users", res.Users),
		AlbumsCount: CountLabel("Albums", res.Albums),
		Status:      res.Status,
		Failed:      !res.OK(),
		Cards:       CardViews(res.Cards, raw),
	}
}

func CardViews(cards []Card, raw RawState) []models.CardView {
	views := make([]models.CardView, len(cards))
	for i, c := range cards {
		views[i] = CardView(c, raw)
	}
	return views
}

func CardView(c Card, raw RawState) models.CardView {
	u := c.User
	return models.CardView{
		ID:         u.ID,
		Name:       u.DisplayName(),
		Username:   u.DisplayUsername(),
		Badge:      u.Badge(),
		Email:      u.DisplayEmail(),
		Phone:      u.DisplayPhone(),
		Website:    u.DisplayWebsite(),
		Company:    u.DisplayCompany(),
		City:       u.DisplayCity(),
		AlbumCount: len(c.Albums),
		Preview:    c.PreviewTitles(),
		Empty:      PlaceholderNoAlbums,
		Raw:        RawView(c, raw),
	}
}

// RawView builds the raw block for a card in the given state. The block
// carries the card's full JSON, so toggling never goes back to the server.
func RawView(c Card, state RawState) models.RawView {
	raw, err := c.RawJSON()
	if err != nil {
		// Records decoded from the API always re-encode; only a hand-built
		// card with invalid Raw bytes lands here.
		raw = "{}"
	}
	next := Toggle(state)
	return models.RawView{
		CardID:    c.User.ID,
		JSON:      raw,
		State:     string(state),
		NextState: string(next),
		Expanded:  state.Expanded(),
		Label:     state.Label(),
		NextLabel: next.Label(),
	}
}
