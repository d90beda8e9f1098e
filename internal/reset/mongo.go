package reset

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/workdesk/workdesk/internal/shared"
)

const collectionName = "password_resets"

type tokenRecord struct {
	UserID    string    `bson:"user_id"`
	Token     string    `bson:"token"`
	CreatedAt time.Time `bson:"created_at"`
}

// MongoStore implements Store on a MongoDB collection. The one-token-per-user
// invariant is enforced by a unique index plus an atomic upsert, so two
// concurrent verifications cannot leave two live tokens behind.
type MongoStore struct {
	col *mongo.Collection
	ttl time.Duration
	now func() time.Time
}

// NewMongoStore constructs the store with the given expiry window.
func NewMongoStore(db *mongo.Database, ttl time.Duration) *MongoStore {
	return &MongoStore{col: db.Collection(collectionName), ttl: ttl, now: time.Now}
}

// EnsureIndexes creates the unique owner index, the token lookup index and a
// TTL index matching the expiry window. Expiry is still applied on read; the
// TTL monitor is a storage-level backstop, not the source of truth.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "token", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(s.ttl / time.Second)),
		},
	})
	return err
}

// Issue replaces any live token for the user in a single upsert.
func (s *MongoStore) Issue(ctx context.Context, userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	rec := tokenRecord{
		UserID:    userID,
		Token:     token,
		CreatedAt: s.now().UTC(),
	}
	opts := options.FindOneAndReplace().SetUpsert(true)
	err = s.col.FindOneAndReplace(ctx, bson.M{"user_id": userID}, rec, opts).Err()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}
	return token, nil
}

// Resolve looks the token up, applying the expiry window on read.
func (s *MongoStore) Resolve(ctx context.Context, token string) (string, error) {
	cutoff := s.now().UTC().Add(-s.ttl)
	var rec tokenRecord
	err := s.col.FindOne(ctx, bson.M{
		"token":      token,
		"created_at": bson.M{"$gt": cutoff},
	}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", shared.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return rec.UserID, nil
}

// Consume deletes every token owned by the user.
func (s *MongoStore) Consume(ctx context.Context, userID string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

// SweepExpired removes tokens past the window. The background worker runs
// this as a backstop behind the TTL index.
func (s *MongoStore) SweepExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().UTC().Add(-s.ttl)
	res, err := s.col.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lte": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ Store = (*MongoStore)(nil)
