package loadlog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repo keeps load records in the "loads" collection.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("loads")}
}

// EnsureIndexes creates the indexes Recent relies on.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "started_at", Value: -1}},
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "started_at", Value: -1},
			},
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (r *Repo) Insert(ctx context.Context, rec *Record) error {
	_, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return fmt.Errorf("insert load: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLoadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find load %s: %w", id, err)
	}
	return &rec, nil
}

// Recent returns the newest records first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]*Record, error) {
	opts := options.Find().
		SetLimit(int64(clampLimit(limit))).
		SetSort(bson.D{{Key: "started_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []*Record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode loads: %w", err)
	}
	return recs, nil
}
