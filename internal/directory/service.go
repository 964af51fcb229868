package directory

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"time"

	"directory/internal/loadlog"
	"directory/internal/metrics"

	"github.com/yuin/goldmark"
)

//go:embed intro.md
var introMarkdown string

// Result is the outcome of one load. Counts are nil unless the load
// succeeded.
type Result struct {
	LoadID string
	Users  *int
	Albums *int
	Status string
	Cards  []Card
	Err    error
}

func (r Result) OK() bool { return r.Err == nil }

// Card finds the card for a user id.
func (r Result) Card(id int) (Card, error) {
	for _, c := range r.Cards {
		if c.User.ID == id {
			return c, nil
		}
	}
	return Card{}, ErrCardNotFound
}

type Service struct {
	fetcher Fetcher
	loads   loadlog.Log
	metrics *metrics.Metrics
	md      goldmark.Markdown
	log     *slog.Logger
}

func NewService(fetcher Fetcher, loads loadlog.Log, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		loads:   loads,
		metrics: m,
		md:      goldmark.New(),
		log:     log,
	}
}

// Load runs one load sequence: fetch both collections, then join them. A
// failure of any kind yields the fixed failure status and no counts. Loads
// share no state; each caller renders from its own Result.
func (s *Service) Load(ctx context.Context) Result {
	started := time.Now()
	rec := loadlog.NewRecord(started)

	cols, err := s.fetcher.Fetch(ctx)
	elapsed := time.Since(started)
	rec.DurationMS = elapsed.Milliseconds()
	s.metrics.ObserveLoad(err == nil, elapsed)

	var res Result
	if err != nil {
		s.log.Error("directory load failed", "load_id", rec.ID, "error", err)
		rec.Status = loadlog.StatusFailed
		rec.Error = err.Error()
		res = Result{LoadID: rec.ID, Status: StatusLoadFailed, Err: err}
	} else {
		users, albums := len(cols.Users), len(cols.Albums)
		rec.Status = loadlog.StatusOK
		rec.Users, rec.Albums = users, albums
		res = Result{
			LoadID: rec.ID,
			Users:  &users,
			Albums: &albums,
			Status: StatusInitial,
			Cards:  Join(cols.Users, cols.Albums),
		}
		s.log.Info("directory loaded", "load_id", rec.ID, "users", users, "albums", albums, "duration_ms", rec.DurationMS)
	}

	// Audit failures never reach the page.
	if err := s.loads.Insert(ctx, rec); err != nil {
		s.log.Warn("failed to record load", "load_id", rec.ID, "error", err)
	}
	return res
}

func (s *Service) RecentLoads(ctx context.Context, limit int) ([]*loadlog.Record, error) {
	return s.loads.Recent(ctx, limit)
}

func (s *Service) GetLoad(ctx context.Context, id string) (*loadlog.Record, error) {
	return s.loads.Get(ctx, id)
}

// RenderMarkdown converts markdown content to HTML
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return content
	}
	return buf.String()
}

// Intro is the page introduction as HTML.
func (s *Service) Intro() string {
	return s.RenderMarkdown(introMarkdown)
}
