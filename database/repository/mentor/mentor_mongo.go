package mentorRepo

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

// ErrMentorNotFound is returned when no mentor profile matches.
var ErrMentorNotFound = errors.New("mentor not found")

// MongoMentorRepo implements MentorRepository using MongoDB.
type MongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo creates a new instance of MentorRepository using MongoDB.
func NewMongoMentorRepo() MentorRepository {
	repo := &MongoMentorRepo{coll: database.Collection("mentor_profiles")}
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

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expertise", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoMentorRepo) GetByID(id string) (*models.MentorProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.MentorProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMentorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor profile %s: %w", id, err)
	}
	return &profile, nil
}

func (r *MongoMentorRepo) List() ([]models.MentorProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list mentor profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.MentorProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode mentor profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoMentorRepo) Upsert(profile *models.MentorProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	filter := bson.M{"id": profile.ID}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert mentor profile %s: %w", profile.ID, err)
	}
	return nil
}

func (r *MongoMentorRepo) UpsertAvailability(mentorID string, availability models.WeeklyAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": mentorID}
	update := bson.M{"$set": bson.M{
		"availability": availability,
		"updated_at":   time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to upsert availability for mentor %s: %w", mentorID, err)
	}
	if result.MatchedCount == 0 {
		return ErrMentorNotFound
	}
	return nil
}
