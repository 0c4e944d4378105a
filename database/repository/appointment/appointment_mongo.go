package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateKey is returned by Create when an appointment with the same
// idempotency key (or mentor/date/time) already exists.
var ErrDuplicateKey = errors.New("appointment already exists")

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: database.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "idempotency_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "member_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document. Returns ErrDuplicateKey when
// the idempotency key is already present.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID. Returns (nil, nil) when absent.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetByIdempotencyKey retrieves the appointment created under the key.
func (r *MongoAppointmentRepo) GetByIdempotencyKey(key string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment by idempotency key: %w", err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) findAll(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByMentor lists a mentor's appointments, newest first.
func (r *MongoAppointmentRepo) GetByMentor(mentorID string) ([]models.Appointment, error) {
	return r.findAll(bson.M{"mentor_id": mentorID})
}

// GetByMember lists a member's appointments, newest first.
func (r *MongoAppointmentRepo) GetByMember(memberID string) ([]models.Appointment, error) {
	return r.findAll(bson.M{"member_id": memberID})
}

// GetAll lists every appointment, newest first.
func (r *MongoAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return r.findAll(bson.M{})
}

// TakenTimes lists start times already held for a mentor on a date,
// ignoring cancelled appointments.
func (r *MongoAppointmentRepo) TakenTimes(mentorID, date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"mentor_id": mentorID,
		"date":      date,
		"status":    bson.M{"$ne": models.AppointmentCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"time": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list taken times: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Time string `bson:"time"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode taken times: %w", err)
	}

	times := make([]string, 0, len(docs))
	for _, d := range docs {
		times = append(times, d.Time)
	}
	return times, nil
}

// ExistsAt reports whether a non-cancelled appointment already holds the slot.
func (r *MongoAppointmentRepo) ExistsAt(mentorID, date, timeOfDay string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"mentor_id": mentorID,
		"date":      date,
		"time":      timeOfDay,
		"status":    bson.M{"$ne": models.AppointmentCancelled},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus transitions the appointment lifecycle status.
func (r *MongoAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) error {
	return r.updateSet(id, bson.M{"status": status})
}

// UpdatePaymentStatus records settlement of the consultation fee.
func (r *MongoAppointmentRepo) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	return r.updateSet(id, bson.M{"payment_status": status})
}

func (r *MongoAppointmentRepo) updateSet(id string, doc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}
