package notesRepo

import (
	"context"
	"fmt"
	"time"

	"bluerobins/database"
	"bluerobins/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNoteRepo implements NoteRepository using MongoDB.
type MongoNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoNoteRepo creates a new instance of NoteRepository using MongoDB.
func NewMongoNoteRepo() NoteRepository {
	repo := &MongoNoteRepo{coll: database.Collection("progress_notes")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "mentor_id", Value: 1},
				{Key: "student_id", Value: 1},
				{Key: "week_start", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "week_start", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoNoteRepo) Upsert(note *models.ProgressNote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"mentor_id":  note.MentorID,
		"student_id": note.StudentID,
		"week_start": note.WeekStart,
	}
	update := bson.M{
		"$set": bson.M{
			"summary":     note.Summary,
			"wins":        note.Wins,
			"focus_areas": note.FocusAreas,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"id":         note.ID,
			"mentor_id":  note.MentorID,
			"student_id": note.StudentID,
			"week_start": note.WeekStart,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert progress note: %w", err)
	}
	return nil
}

func (r *MongoNoteRepo) ListByStudent(studentID string) ([]models.ProgressNote, error) {
	return r.find(bson.M{"student_id": studentID})
}

func (r *MongoNoteRepo) ListByMentor(mentorID string) ([]models.ProgressNote, error) {
	return r.find(bson.M{"mentor_id": mentorID})
}

func (r *MongoNoteRepo) find(filter bson.M) ([]models.ProgressNote, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "week_start", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.ProgressNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode progress notes: %w", err)
	}
	return notes, nil
}
