package databases

// go generate: mockery --name CounterDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterCollection = "counters"

// ReportCounter names the sequence that hands out report ids.
const ReportCounter = "reports"

// CounterDatabase hands out sequential integer ids. Each named sequence
// lives in its own counters document and is incremented atomically, so
// concurrent creates never observe the same value.
type CounterDatabase interface {
	Next(ctx context.Context, name string) (int, error)
}

type counterDatabase struct {
	db DatabaseHelper
}

// NewCounterDatabase initializes a new instance of counter database with the provided db connection
func NewCounterDatabase(db DatabaseHelper) CounterDatabase {
	return &counterDatabase{
		db: db,
	}
}

func (c *counterDatabase) Next(ctx context.Context, name string) (int, error) {
	upsert := true
	after := options.After
	opts := &options.FindOneAndUpdateOptions{
		Upsert:         &upsert,
		ReturnDocument: &after,
	}

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := c.db.Collection(counterCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
