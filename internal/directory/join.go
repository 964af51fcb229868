package directory

// PreviewLimit is the number of album titles shown on a card.
const PreviewLimit = 3

// Card is one display unit: a user and every album that names it.
type Card struct {
	User   User
	Albums []Album
}

// GroupByUser indexes albums by their userId in a single pass. Order within
// a group follows the input. Albums without a userId are left out.
func GroupByUser(albums []Album) map[int][]Album {
	groups := make(map[int][]Album)
	for _, a := range albums {
		if a.UserID == nil {
			continue
		}
		groups[*a.UserID] = append(groups[*a.UserID], a)
	}
	return groups
}

// Join builds one card per user, in user order. Albums whose userId matches
// no user are dropped.
func Join(users []User, albums []Album) []Card {
	groups := GroupByUser(albums)

	cards := make([]Card, len(users))
	for i, u := range users {
		group, ok := groups[u.ID]
		if !ok {
			group = []Album{}
		}
		cards[i] = Card{User: u, Albums: group}
	}
	return cards
}

// Preview returns at most PreviewLimit albums from the front of the group.
func (c Card) Preview() []Album {
	n := min(PreviewLimit, len(c.Albums))
	return c.Albums[:n:n]
}

// PreviewTitles is Preview reduced to titles.
func (c Card) PreviewTitles() []string {
	preview := c.Preview()
	titles := make([]string, len(preview))
	for i, a := range preview {
		titles[i] = a.Title
	}
	return titles
}

type rawCard struct {
	User   User    `json:"user"`
	Albums []Album `json:"albums"`
}

// RawJSON renders the user and the full album group, untruncated, as
// indented JSON.
func (c Card) RawJSON() (string, error) {
	albums := c.Albums
	if albums == nil {
		albums = []Album{}
	}
	data, err := encodeJSON(rawCard{User: c.User, Albums: albums}, "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CardPayload is the JSON shape of a card on the API and MCP surfaces.
type CardPayload struct {
	User    User     `json:"user"`
	Albums  []Album  `json:"albums"`
	Preview []string `json:"preview"`
}

func (c Card) Payload() CardPayload {
	albums := c.Albums
	if albums == nil {
		albums = []Album{}
	}
	return CardPayload{User: c.User, Albums: albums, Preview: c.PreviewTitles()}
}
