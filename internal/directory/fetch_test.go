package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// apiStub serves fixed bodies and statuses for /users and /albums.
type apiStub struct {
	usersStatus  int
	usersBody    string
	albumsStatus int
	albumsBody   string
}

func (s apiStub) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.usersStatus)
		w.Write([]byte(s.usersBody))
	})
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.albumsStatus)
		w.Write([]byte(s.albumsBody))
	})
	return httptest.NewServer(mux)
}

func okStub() apiStub {
	return apiStub{
		usersStatus:  http.StatusOK,
		usersBody:    `[{"id":1,"name":"A"},{"id":2}]`,
		albumsStatus: http.StatusOK,
		albumsBody:   `[{"id":10,"userId":1,"title":"x"},{"id":11,"userId":1,"title":"y"},{"id":12,"userId":3,"title":"z"}]`,
	}
}

func newTestClient(srv *httptest.Server) *Client {
	transport := &http.Transport{DisableKeepAlives: true}
	return NewClient(srv.URL+"/users", srv.URL+"/albums", &http.Client{Transport: transport})
}

// leakCheck snapshots running goroutines; the returned func fails the test
// if the fetch left any behind. Defer it before starting servers.
func leakCheck(t *testing.T) func() {
	ignore := goleak.IgnoreCurrent()
	return func() {
		goleak.VerifyNone(t,
			ignore,
			goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
			goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		)
	}
}

func TestClientFetch(t *testing.T) {
	defer leakCheck(t)()

	srv := okStub().start(t)
	defer srv.Close()
	cols, err := newTestClient(srv).Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, cols.Users, 2)
	assert.Len(t, cols.Albums, 3)
	assert.Equal(t, "x", cols.Albums[0].Title)
}

func TestClientFetchFailures(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*apiStub)
	}{
		{"users 500", func(s *apiStub) { s.usersStatus = http.StatusInternalServerError }},
		{"albums 500", func(s *apiStub) { s.albumsStatus = http.StatusInternalServerError }},
		{"both 500", func(s *apiStub) {
			s.usersStatus = http.StatusInternalServerError
			s.albumsStatus = http.StatusInternalServerError
		}},
		{"albums 404", func(s *apiStub) { s.albumsStatus = http.StatusNotFound }},
		{"users not json", func(s *apiStub) { s.usersBody = `<html>oops</html>` }},
		{"albums not an array", func(s *apiStub) { s.albumsBody = `{"id":1}` }},
		{"user without id", func(s *apiStub) { s.usersBody = `[{"name":"A"}]` }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer leakCheck(t)()

			stub := okStub()
			tt.modify(&stub)
			srv := stub.start(t)
			defer srv.Close()

			cols, err := newTestClient(srv).Fetch(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLoadFailed)
			assert.Empty(t, cols.Users, "no partial data")
			assert.Empty(t, cols.Albums, "no partial data")
		})
	}
}

func TestClientFetchTransportFailure(t *testing.T) {
	srv := okStub().start(t)
	client := newTestClient(srv)
	srv.Close()

	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestClientFetchCanceledContext(t *testing.T) {
	srv := okStub().start(t)
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).Fetch(ctx)
	assert.ErrorIs(t, err, ErrLoadFailed)
}
