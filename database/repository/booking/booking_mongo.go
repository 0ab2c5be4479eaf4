package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bluerobins/database"
	"bluerobins/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound is returned when no booking matches the lookup.
var ErrBookingNotFound = errors.New("booking not found")

// BatchInsertError reports which session in a multi-session batch
// failed. The batch is compensated: rows written before the failure are
// removed again before this error is returned.
type BatchInsertError struct {
	FailedIndex int
	Cause       error
}

func (e *BatchInsertError) Error() string {
	return fmt.Sprintf("failed to insert session %d: %v", e.FailedIndex+1, e.Cause)
}

func (e *BatchInsertError) Unwrap() error {
	return e.Cause
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}, {Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "booker_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// CreateBatch inserts the sessions of one purchase in ascending date
// order. Ordered InsertMany stops at the first failing row; the rows
// before it are deleted again so a purchase never leaves orphaned
// sessions behind.
func (r *MongoBookingRepo) CreateBatch(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(bookings))
	for i := range bookings {
		bookings[i].CreatedAt = now
		docs[i] = bookings[i]
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err == nil {
		return nil
	}

	failedIdx := 0
	if res != nil {
		failedIdx = len(res.InsertedIDs)
	}
	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) && len(bulkErr.WriteErrors) > 0 {
		failedIdx = bulkErr.WriteErrors[0].Index
	}

	// Compensate: remove whatever part of the batch already landed.
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	cleanupCtx, cancel := newContext(10 * time.Second)
	defer cancel()
	if _, delErr := r.coll.DeleteMany(cleanupCtx, bson.M{"id": bson.M{"$in": ids}}); delErr != nil {
		return fmt.Errorf("batch insert failed at session %d and cleanup also failed: %v (insert error: %w)", failedIdx+1, delErr, err)
	}

	return &BatchInsertError{FailedIndex: failedIdx, Cause: err}
}

func (r *MongoBookingRepo) GetByMentorAndRange(mentorID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"mentor_id":  mentorID,
		"start_time": bson.M{"$lt": to},
		"end_time":   bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for mentor %s: %w", mentorID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"booker_id": userID},
		bson.M{"mentor_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) SetCalendarEvent(id, eventID, meetLink string) error {
	return r.setFields(id, bson.M{
		"calendar_event_id": eventID,
		"meet_link":         meetLink,
	})
}

func (r *MongoBookingRepo) SetStatus(id, status string) error {
	return r.setFields(id, bson.M{"status": status})
}

func (r *MongoBookingRepo) UpdateTimes(id string, start, end time.Time) error {
	return r.setFields(id, bson.M{
		"start_time": start,
		"end_time":   end,
	})
}

func (r *MongoBookingRepo) setFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
