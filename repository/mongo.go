package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blightwatch-be/models"
)

const (
	casesCollection   = "cases"
	reviewsCollection = "reviews"
	usersCollection   = "users"
)

type MongoCaseStore struct {
	collection *mongo.Collection
}

func NewMongoCaseStore(db *mongo.Database) *MongoCaseStore {
	return &MongoCaseStore{collection: db.Collection(casesCollection)}
}

func (s *MongoCaseStore) List(ctx context.Context) ([]*models.Case, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find cases: %w", err)
	}
	defer cursor.Close(ctx)

	cases := []*models.Case{}
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	return cases, nil
}

func (s *MongoCaseStore) Get(ctx context.Context, id string) (*models.Case, error) {
	var c models.Case
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find case %s: %w", id, err)
	}
	return &c, nil
}

func (s *MongoCaseStore) Create(ctx context.Context, c *models.Case) error {
	_, err := s.collection.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("case %s: %w", c.ID, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("insert case %s: %w", c.ID, err)
	}
	return nil
}

func (s *MongoCaseStore) UpdateStatus(ctx context.Context, id string, status models.CaseStatus) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update case %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	return nil
}

// Upsert writes c whether or not it already exists. Used when seeding.
func (s *MongoCaseStore) Upsert(ctx context.Context, c *models.Case) error {
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert case %s: %w", c.ID, err)
	}
	return nil
}

type MongoReviewStore struct {
	collection *mongo.Collection
}

func NewMongoReviewStore(db *mongo.Database) *MongoReviewStore {
	return &MongoReviewStore{collection: db.Collection(reviewsCollection)}
}

// EnsureIndexes creates the (caseId, createdAt) index used for listing.
func (s *MongoReviewStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "caseId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (s *MongoReviewStore) Add(ctx context.Context, comment *models.ReviewComment) error {
	if _, err := s.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("insert review for %s: %w", comment.CaseID, err)
	}
	return nil
}

func (s *MongoReviewStore) ListByCase(ctx context.Context, caseID string) ([]*models.ReviewComment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"caseId": caseID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find reviews for %s: %w", caseID, err)
	}
	defer cursor.Close(ctx)

	comments := []*models.ReviewComment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode reviews for %s: %w", caseID, err)
	}
	return comments, nil
}

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection(usersCollection)}
}

// EnsureIndexes creates a unique index on email.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": emailKey(email)}, email)
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id}, id.Hex())
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M, label string) (*models.User, error) {
	var u models.User
	err := s.collection.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", label, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", label, err)
	}
	return &u, nil
}

func (s *MongoUserStore) Create(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	_, err := s.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("user %s: %w", u.Email, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.Email, err)
	}
	return nil
}
