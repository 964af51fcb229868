package loadlog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLoadNotFound = errors.New("load not found")

type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Record is one load attempt.
type Record struct {
	ID         string    `bson:"_id" json:"id"`
	StartedAt  time.Time `bson:"started_at" json:"startedAt"`
	DurationMS int64     `bson:"duration_ms" json:"durationMs"`
	Status     Status    `bson:"status" json:"status"`
	Users      int       `bson:"users" json:"users"`
	Albums     int       `bson:"albums" json:"albums"`
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
}

// NewRecord starts a record with a fresh ID.
func NewRecord(startedAt time.Time) *Record {
	return &Record{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
	}
}

// Log stores load records.
type Log interface {
	Insert(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Recent(ctx context.Context, limit int) ([]*Record, error)
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
