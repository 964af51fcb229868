package loadlog

import (
	"context"
	"sync"
)

// Memory is a bounded in-process Log used when no database is configured.
// It keeps the newest maxLimit records.
type Memory struct {
	mu   sync.Mutex
	recs []*Record
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Insert(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *rec
	m.recs = append(m.recs, &cp)
	if len(m.recs) > maxLimit {
		m.recs = m.recs[len(m.recs)-maxLimit:]
	}
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.recs {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, ErrLoadNotFound
}

// Recent returns the newest records first.
func (m *Memory) Recent(_ context.Context, limit int) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := min(clampLimit(limit), len(m.recs))
	out := make([]*Record, 0, n)
	for i := len(m.recs) - 1; i >= 0 && len(out) < n; i-- {
		cp := *m.recs[i]
		out = append(out, &cp)
	}
	return out, nil
}
