package employees

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/workdesk/workdesk/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, employee Employee) error
	Update(ctx context.Context, id string, employee Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("employees")}
}

func (r *repository) List(ctx context.Context) ([]Employee, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var employees []Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) Create(ctx context.Context, employee Employee) error {
	_, err := r.col.InsertOne(ctx, employee)
	return err
}

func (r *repository) Update(ctx context.Context, id string, employee Employee) error {
	update := bson.M{"$set": bson.M{
		"ename":        employee.Name,
		"dob":          employee.DateOfBirth,
		"gender":       employee.Gender,
		"email":        employee.Email,
		"pnumber":      employee.Phone,
		"address":      employee.Address,
		"designation":  employee.Designation,
		"salary":       employee.Salary,
		"joining_date": employee.JoiningDate,
		"aadhar":       employee.Aadhar,
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
