package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SanzharBissenali/tazaQala/config"
	"github.com/SanzharBissenali/tazaQala/models"
)

const collection = "submissions"

// Store is the report persistence handle. It owns the pooled client
// and the collection; callers get one from Connect and pass it where
// it is needed instead of reaching for a package singleton.
type Store struct {
	client  *mongo.Client
	reports *mongo.Collection
}

// Connect dials MongoDB, pings it and prepares the submissions
// collection. The returned Store reuses the driver's connection pool
// for the life of the process.
func Connect(ctx context.Context, cfg config.Config) (*Store, error) {
	start := time.Now()
	log.Printf("mongo: connecting uri=%s db=%s", redactURI(cfg.MongoURI), cfg.MongoDB)

	dctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{
		client:  c,
		reports: c.Database(cfg.MongoDB).Collection(collection),
	}

	if err := s.createIndexes(); err != nil {
		log.Printf("mongo: index creation warnings: %v", err)
	}

	log.Printf("mongo: connected ok in %s", time.Since(start).Round(time.Millisecond))
	return s, nil
}

// Disconnect releases the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert adds one report document and returns its assigned id. The
// store never updates or deletes; a report is written exactly once.
func (s *Store) Insert(ctx context.Context, r models.Report) (string, error) {
	res, err := s.reports.InsertOne(ctx, r)
	if err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert report: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns reports newest first (createdAt descending, read-time
// sort). limit <= 0 means the whole collection, which is the contract
// existing clients rely on; cursor, when set, is an ObjectID hex that
// bounds the page from above.
func (s *Store) List(ctx context.Context, limit int64, cursor string) ([]models.Report, error) {
	filter := bson.M{}
	if cursor != "" {
		oid, err := primitive.ObjectIDFromHex(cursor)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor: %w", err)
		}
		// Resume strictly after the cursor document in (createdAt,
		// _id) order. _id alone is not enough: backfilled documents
		// can carry a createdAt that disagrees with insertion order.
		var mark struct {
			CreatedAt time.Time `bson:"createdAt"`
		}
		err = s.reports.FindOne(ctx, bson.M{"_id": oid}).Decode(&mark)
		switch {
		case err == mongo.ErrNoDocuments:
			filter["_id"] = bson.M{"$lt": oid}
		case err != nil:
			return nil, fmt.Errorf("resolve cursor: %w", err)
		default:
			filter["$or"] = []bson.M{
				{"createdAt": bson.M{"$lt": mark.CreatedAt}},
				{"createdAt": mark.CreatedAt, "_id": bson.M{"$lt": oid}},
			}
		}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.reports.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}

	var reports []models.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

func (s *Store) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// createdAt serves the list sort; nothing else is queried.
	_, err := s.reports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	return nil
}

// redactURI masks credentials before the URI reaches a log line.
func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}
