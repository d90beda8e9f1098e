package projects

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/workdesk/workdesk/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, project Project) error
	Update(ctx context.Context, id string, project Project) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("projects")}
}

func (r *repository) List(ctx context.Context) ([]Project, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var projects []Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *repository) Create(ctx context.Context, project Project) error {
	_, err := r.col.InsertOne(ctx, project)
	return err
}

func (r *repository) Update(ctx context.Context, id string, project Project) error {
	update := bson.M{"$set": bson.M{
		"pname":        project.Name,
		"cname":        project.Client,
		"pmanager":     project.Manager,
		"sdate":        project.StartDate,
		"edate":        project.EndDate,
		"status":       project.Status,
		"pdescription": project.Description,
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
