package events

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/workdesk/workdesk/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, event Event) error
	Update(ctx context.Context, id string, event Event) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("events")}
}

func (r *repository) List(ctx context.Context) ([]Event, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) Create(ctx context.Context, event Event) error {
	_, err := r.col.InsertOne(ctx, event)
	return err
}

func (r *repository) Update(ctx context.Context, id string, event Event) error {
	update := bson.M{"$set": bson.M{
		"name":    event.Name,
		"address": event.Address,
		"date":    event.Date,
		"stime":   event.StartTime,
		"etime":   event.EndTime,
		"type":    event.Type,
		"happend": event.Happened,
	}}
	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
