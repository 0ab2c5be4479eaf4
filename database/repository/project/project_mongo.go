package projectRepo

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

var (
	// ErrProjectNotFound is returned when no project matches the lookup.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoSpots is the authoritative "pool full" signal from ClaimSpot.
	ErrNoSpots = errors.New("no spots available")
)

// MongoProjectRepo implements ProjectRepository using MongoDB.
type MongoProjectRepo struct {
	coll *mongo.Collection
}

// NewMongoProjectRepo creates a new instance of ProjectRepository using MongoDB.
func NewMongoProjectRepo() ProjectRepository {
	repo := &MongoProjectRepo{coll: database.Collection("projects")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProjectRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mentor_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoProjectRepo) GetByID(id string) (*models.Project, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var project models.Project
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	return &project, nil
}

func (r *MongoProjectRepo) ListByMentor(mentorID string) ([]models.Project, error) {
	return r.find(bson.M{"mentor_id": mentorID})
}

func (r *MongoProjectRepo) List() ([]models.Project, error) {
	return r.find(bson.M{})
}

func (r *MongoProjectRepo) find(filter bson.M) ([]models.Project, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

func (r *MongoProjectRepo) Create(project *models.Project) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *MongoProjectRepo) Update(project *models.Project) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	project.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": project.ID}, bson.M{"$set": project})
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *MongoProjectRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ClaimSpot performs the capacity check and the increment as one
// conditional update, so two purchases racing for the last spot cannot
// both pass. A zero-match with the project present means the pool is
// full.
func (r *MongoProjectRepo) ClaimSpot(ctx context.Context, id string) (*models.Project, error) {
	filter := bson.M{
		"id":    id,
		"$expr": bson.M{"$lt": bson.A{"$filled_spots", "$spots"}},
	}
	update := bson.M{
		"$inc": bson.M{"filled_spots": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project models.Project
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Distinguish "full" from "missing".
		if _, getErr := r.GetByID(id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNoSpots
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim spot on project %s: %w", id, err)
	}
	return &project, nil
}

func (r *MongoProjectRepo) ReleaseSpot(ctx context.Context, id string) error {
	filter := bson.M{
		"id":    id,
		"$expr": bson.M{"$gt": bson.A{"$filled_spots", 0}},
	}
	update := bson.M{
		"$inc": bson.M{"filled_spots": -1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to release spot on project %s: %w", id, err)
	}
	return nil
}
