package repository

import (
	"context"
	"time"

	"github.com/taskreports/task-api/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskRepository - документное хранилище задач, как в исходной системе
type MongoTaskRepository struct {
	collection *mongo.Collection
}

func NewMongoTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{
		collection: db.Collection("tasks"),
	}
}

func (r *MongoTaskRepository) Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	task := &entity.Task{
		ID:             primitive.NewObjectID().Hex(),
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		Priority:       req.Priority,
		AssignedMember: req.AssignedMember,
		Status:         req.Status,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *MongoTaskRepository) GetById(ctx context.Context, id string) (*entity.Task, error) {
	var task entity.Task

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (r *MongoTaskRepository) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *MongoTaskRepository) List(ctx context.Context, filter TaskFilter) ([]entity.Task, error) {
	query := bson.M{}

	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.AssignedMember != "" {
		query["assignedMember"] = filter.AssignedMember
	}
	if filter.CompletedFrom != nil && filter.CompletedTo != nil {
		query["completedAt"] = bson.M{
			"$gte": *filter.CompletedFrom,
			"$lte": *filter.CompletedTo,
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []entity.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}
