package departments

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/workdesk/workdesk/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, department Department) error
	Update(ctx context.Context, id string, department Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("departments")}
}

func (r *repository) List(ctx context.Context) ([]Department, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var departments []Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *repository) Create(ctx context.Context, department Department) error {
	_, err := r.col.InsertOne(ctx, department)
	return err
}

func (r *repository) Update(ctx context.Context, id string, department Department) error {
	update := bson.M{"$set": bson.M{
		"dname":       department.Name,
		"email":       department.Email,
		"number":      department.Number,
		"nemployees":  department.Employees,
		"resp":        department.Responsible,
		"budget":      department.Budget,
		"status":      department.Status,
		"description": department.Description,
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
