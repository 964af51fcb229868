package models

// DirectoryView represents the whole directory page for template rendering
type DirectoryView struct {
	IntroHTML   string
	UsersCount  string
	AlbumsCount string
	Status      string
	Failed      bool
	Cards       []CardView
}

// CardView represents one user card. Every string is already defaulted.
type CardView struct {
	ID         int
	Name       string
	Username   string
	Badge      string
	Email      string
	Phone      string
	Website    string
	Company    string
	City       string
	AlbumCount int
	Preview    []string
	Empty      string
	Raw        RawView
}

// RawView represents a card's raw JSON block in its rendered state and the
// state one click away. The browser swaps the two on each click.
type RawView struct {
	CardID    int
	JSON      string
	State     string
	NextState string
	Expanded  bool
	Label     string
	NextLabel string
}
