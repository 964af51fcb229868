package directory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMissingID    = errors.New("record has no id")
	ErrCardNotFound = errors.New("card not found")
)

// User is a primary directory record. Everything except ID is optional and
// nil when the source omitted it, sent null, or sent an empty string.
type User struct {
	ID       int
	Name     *string
	Username *string
	Email    *string
	Phone    *string
	Website  *string
	Company  *string
	City     *string

	// Raw holds the record exactly as the API sent it.
	Raw json.RawMessage
}

// Album is a secondary record owned by the user named in UserID.
type Album struct {
	ID     int
	UserID *int
	Title  string

	Raw json.RawMessage
}

type userWire struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Website  *string `json:"website,omitempty"`
	Company  *struct {
		Name *string `json:"name,omitempty"`
	} `json:"company,omitempty"`
	Address *struct {
		City *string `json:"city,omitempty"`
	} `json:"address,omitempty"`
}

type albumWire struct {
	ID     int    `json:"id"`
	UserID *int   `json:"userId,omitempty"`
	Title  string `json:"title"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	if w.ID == nil {
		return ErrMissingID
	}

	*u = User{
		ID:       *w.ID,
		Name:     present(w.Name),
		Username: present(w.Username),
		Email:    present(w.Email),
		Phone:    present(w.Phone),
		Website:  present(w.Website),
		Raw:      append(json.RawMessage(nil), data...),
	}
	if w.Company != nil {
		u.Company = present(w.Company.Name)
	}
	if w.Address != nil {
		u.City = present(w.Address.City)
	}
	return nil
}

// MarshalJSON writes the source record verbatim when one is held.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}

	id := u.ID
	w := userWire{
		ID:       &id,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
	if u.Company != nil {
		w.Company = &struct {
			Name *string `json:"name,omitempty"`
		}{Name: u.Company}
	}
	if u.City != nil {
		w.Address = &struct {
			City *string `json:"city,omitempty"`
		}{City: u.City}
	}
	return encodeJSON(w, "")
}

func (a *Album) UnmarshalJSON(data []byte) error {
	var w albumWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode album: %w", err)
	}

	*a = Album{
		ID:     w.ID,
		UserID: w.UserID,
		Title:  w.Title,
		Raw:    append(json.RawMessage(nil), data...),
	}
	return nil
}

func (a Album) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}
	return encodeJSON(albumWire{ID: a.ID, UserID: a.UserID, Title: a.Title}, "")
}

// encodeJSON is json.Marshal without HTML escaping. Records keep &, < and >
// as the API sent them; the views escape for HTML.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func present(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
