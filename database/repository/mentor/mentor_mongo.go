package mentorRepo

import (
	"context"
	"fmt"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMentorRepo implements MentorRepository using MongoDB.
type MongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo creates a new instance of MentorRepository using MongoDB.
func NewMongoMentorRepo() MentorRepository {
	repo := &MongoMentorRepo{coll: database.Collection("mentors")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMentorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "field.id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new mentor document.
func (r *MongoMentorRepo) Create(mentor *models.Mentor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	mentor.CreatedAt = now
	mentor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, mentor); err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

// Update modifies an existing mentor document.
func (r *MongoMentorRepo) Update(mentor *models.Mentor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	mentor.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": mentor.ID}, bson.M{"$set": mentor})
	if err != nil {
		return fmt.Errorf("failed to update mentor with id %s: %w", mentor.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentor with id %s not found", mentor.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a mentor document.
func (r *MongoMentorRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update mentor with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentor with id %s not found", id)
	}
	return nil
}

// Delete removes a mentor document by its ID.
func (r *MongoMentorRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete mentor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("mentor with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a mentor by its unique ID. Returns (nil, nil) when absent.
func (r *MongoMentorRepo) GetByID(id string) (*models.Mentor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var mentor models.Mentor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mentor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentor with id %s: %w", id, err)
	}
	return &mentor, nil
}

// GetByUserID retrieves the mentor backed by the given user account.
func (r *MongoMentorRepo) GetByUserID(userID string) (*models.Mentor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var mentor models.Mentor
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mentor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentor for user %s: %w", userID, err)
	}
	return &mentor, nil
}

// Search lists mentors matching the query, newest first.
func (r *MongoMentorRepo) Search(q SearchQuery) ([]models.Mentor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if q.FieldID != "" {
		filter["field.id"] = q.FieldID
	}
	if q.Name != "" {
		filter["full_name"] = bson.M{"$regex": primitive.Regex{Pattern: q.Name, Options: "i"}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search mentors: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

// SetRating stores the recomputed review aggregate.
func (r *MongoMentorRepo) SetRating(id string, rating float64, reviewCount int) error {
	return r.UpdateSetDocument(id, bson.M{"rating": rating, "review_count": reviewCount})
}
