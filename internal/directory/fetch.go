package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// ErrLoadFailed covers every way a load can fail: transport errors, a
// non-2xx status on either endpoint, or a body that does not decode.
var ErrLoadFailed = errors.New("load failed")

const (
	DefaultUsersURL  = "https://jsonplaceholder.typicode.com/users"
	DefaultAlbumsURL = "https://jsonplaceholder.typicode.com/albums"
)

// Collections is the pair of collections a load produces.
type Collections struct {
	Users  []User
	Albums []Album
}

// Fetcher retrieves both collections or fails as a whole.
type Fetcher interface {
	Fetch(ctx context.Context) (Collections, error)
}

// Client fetches users and albums from two fixed endpoints.
type Client struct {
	usersURL  string
	albumsURL string
	http      *http.Client
}

func NewClient(usersURL, albumsURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{usersURL: usersURL, albumsURL: albumsURL, http: httpClient}
}

// Fetch issues both requests concurrently and waits for both. Any failure on
// either side fails the whole fetch with ErrLoadFailed.
func (c *Client) Fetch(ctx context.Context) (Collections, error) {
	var out Collections

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, c.usersURL, &out.Users)
	})
	g.Go(func() error {
		return c.getJSON(gctx, c.albumsURL, &out.Albums)
	})
	if err := g.Wait(); err != nil {
		return Collections{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
