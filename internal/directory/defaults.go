package directory

import "strconv"

// Placeholder text shown in place of absent fields.
const (
	PlaceholderName     = "Unnamed user"
	PlaceholderUsername = "unknown"
	PlaceholderField    = "N/A"
	PlaceholderNoAlbums = "No albums available."
)

// Status messages for the page status area.
const (
	StatusInitial    = "Loading directory..."
	StatusLoadFailed = "Unable to load directory data."
)

// CountUnset is rendered by the counters until a load succeeds.
const CountUnset = "--"

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func (u User) DisplayName() string { return orDefault(u.Name, PlaceholderName) }

// DisplayUsername includes the leading "@".
func (u User) DisplayUsername() string { return "@" + orDefault(u.Username, PlaceholderUsername) }

func (u User) DisplayEmail() string   { return orDefault(u.Email, PlaceholderField) }
func (u User) DisplayPhone() string   { return orDefault(u.Phone, PlaceholderField) }
func (u User) DisplayWebsite() string { return orDefault(u.Website, PlaceholderField) }
func (u User) DisplayCompany() string { return orDefault(u.Company, PlaceholderField) }
func (u User) DisplayCity() string    { return orDefault(u.City, PlaceholderField) }

func (u User) Badge() string { return "User #" + strconv.Itoa(u.ID) }

// CountLabel formats a counter such as "Users: 10"; a nil count renders as
// unset.
func CountLabel(label string, n *int) string {
	if n == nil {
		return label + ": " + CountUnset
	}
	return label + ": " + strconv.Itoa(*n)
}
