package applicationRepo

import (
	"context"
	"fmt"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoApplicationRepo implements ApplicationRepository using MongoDB.
type MongoApplicationRepo struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepo creates a new instance of ApplicationRepository using MongoDB.
func NewMongoApplicationRepo() ApplicationRepository {
	repo := &MongoApplicationRepo{coll: database.Collection("mentor_applications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoApplicationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new mentor application document.
func (r *MongoApplicationRepo) Create(app *models.MentorApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create mentor application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its unique ID. Returns (nil, nil) when absent.
func (r *MongoApplicationRepo) GetByID(id string) (*models.MentorApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.MentorApplication
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentor application with id %s: %w", id, err)
	}
	return &app, nil
}

// GetByUserID lists a user's applications, newest first.
func (r *MongoApplicationRepo) GetByUserID(userID string) ([]models.MentorApplication, error) {
	return r.findAll(bson.M{"user_id": userID})
}

// GetAll lists applications, optionally filtered by status, newest first.
func (r *MongoApplicationRepo) GetAll(status models.ApplicationStatus) ([]models.MentorApplication, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.findAll(filter)
}

func (r *MongoApplicationRepo) findAll(filter bson.M) ([]models.MentorApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentor applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.MentorApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode mentor applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus records an admin decision on the application.
func (r *MongoApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update mentor application with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentor application with id %s not found", id)
	}
	return nil
}
