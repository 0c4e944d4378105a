package fieldRepo

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

// MongoFieldRepo implements FieldRepository using MongoDB.
type MongoFieldRepo struct {
	coll *mongo.Collection
}

// NewMongoFieldRepo creates a new instance of FieldRepository using MongoDB.
func NewMongoFieldRepo() FieldRepository {
	repo := &MongoFieldRepo{coll: database.Collection("fields")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFieldRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new field document.
func (r *MongoFieldRepo) Create(field *models.Field) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	field.CreatedAt = now
	field.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, field); err != nil {
		return fmt.Errorf("failed to create field: %w", err)
	}
	return nil
}

// Update modifies an existing field document.
func (r *MongoFieldRepo) Update(field *models.Field) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	field.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": field.ID}, bson.M{"$set": field})
	if err != nil {
		return fmt.Errorf("failed to update field with id %s: %w", field.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("field with id %s not found", field.ID)
	}
	return nil
}

// Delete removes a field document by its ID.
func (r *MongoFieldRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete field with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("field with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a field by its unique ID. Returns (nil, nil) when absent.
func (r *MongoFieldRepo) GetByID(id string) (*models.Field, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var field models.Field
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&field); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch field with id %s: %w", id, err)
	}
	return &field, nil
}

// GetAll retrieves all field documents sorted by name.
func (r *MongoFieldRepo) GetAll() ([]models.Field, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	defer cursor.Close(ctx)

	var fields []models.Field
	if err := cursor.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}
	return fields, nil
}
