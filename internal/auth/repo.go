package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/workdesk/workdesk/internal/shared"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// MongoRepository implements Repository on the users collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository constructs a MongoDB-backed repository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Uniqueness is enforced here,
// at write time, so concurrent registrations cannot both slip through.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts the user in a single write. The unique index turns a
// concurrent duplicate into ErrEmailExists rather than a second user.
func (r *MongoRepository) Create(ctx context.Context, user *User) error {
	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return shared.ErrEmailExists
	}
	return err
}

// FindByEmail fetches a user by normalized email.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored hash for the user.
func (r *MongoRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.col.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*MongoRepository)(nil)
