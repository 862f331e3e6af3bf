// internal/app/store/content/contentstore.go
package contentstore

import (
	"context"
	"errors"

	"github.com/caprecon/backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned when the store was constructed without a
// database (degraded startup, see bootstrap.ConnectDB).
var ErrUnavailable = errors.New("content store: database unavailable")

// Store provides access to the content collections (program, story, post).
type Store struct {
	db *mongo.Database
}

// New creates a content store. db may be nil; operations then fail with
// ErrUnavailable instead of panicking.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListPrograms returns up to limit programs, newest first (descending _id).
// With publishedOnly, drafts are excluded.
func (s *Store) ListPrograms(ctx context.Context, publishedOnly bool, limit int64) ([]models.Program, error) {
	return list[models.Program](ctx, s.db, "program", publishedOnly, limit)
}

// ListStories returns up to limit stories, newest first.
func (s *Store) ListStories(ctx context.Context, publishedOnly bool, limit int64) ([]models.Story, error) {
	return list[models.Story](ctx, s.db, "story", publishedOnly, limit)
}

// ListPosts returns up to limit posts, newest first.
func (s *Store) ListPosts(ctx context.Context, publishedOnly bool, limit int64) ([]models.Post, error) {
	return list[models.Post](ctx, s.db, "post", publishedOnly, limit)
}

// InsertProgram stores a program and returns its assigned id. Used by the
// administrative seeding process and tests; there is no public endpoint.
// Ids are assigned by Mongo on insert; any id on the value is discarded.
func (s *Store) InsertProgram(ctx context.Context, p models.Program) (primitive.ObjectID, error) {
	p.ID = primitive.NilObjectID
	p.ApplyDefaults()
	return insert(ctx, s.db, "program", p)
}

// InsertStory stores a story and returns its assigned id.
func (s *Store) InsertStory(ctx context.Context, st models.Story) (primitive.ObjectID, error) {
	st.ID = primitive.NilObjectID
	st.ApplyDefaults()
	return insert(ctx, s.db, "story", st)
}

// InsertPost stores a post and returns its assigned id.
func (s *Store) InsertPost(ctx context.Context, p models.Post) (primitive.ObjectID, error) {
	p.ID = primitive.NilObjectID
	p.ApplyDefaults()
	return insert(ctx, s.db, "post", p)
}

// Lists sort by _id descending: ObjectIDs embed their creation time, so this
// is newest-first without needing a separate timestamp index.
func list[T any](ctx context.Context, db *mongo.Database, coll string, publishedOnly bool, limit int64) ([]T, error) {
	if db == nil {
		return nil, ErrUnavailable
	}

	filter := bson.M{}
	if publishedOnly {
		filter["status"] = models.StatusPublished
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	cur, err := db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func insert[T any](ctx context.Context, db *mongo.Database, coll string, doc T) (primitive.ObjectID, error) {
	if db == nil {
		return primitive.NilObjectID, ErrUnavailable
	}
	res, err := db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("content store: unexpected inserted id type")
	}
	return id, nil
}
