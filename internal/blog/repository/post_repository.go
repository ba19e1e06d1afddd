package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avasilyev/blogd/internal/blog/domain"
	"github.com/avasilyev/blogd/internal/common/db"
)

const CollectionName = "blogposts"

var ErrPostNotFound = errors.New("post not found")

type Repository interface {
	Insert(ctx context.Context, post domain.Post) error
	FindAll(ctx context.Context) ([]domain.PostWithID, error)
	FindByID(ctx context.Context, id string) (domain.Post, error)
	DeleteByID(ctx context.Context, id string) error
	Drop(ctx context.Context) error
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(CollectionName)}
}

type storedPost struct {
	ID   primitive.ObjectID `bson:"_id"`
	Post domain.Post        `bson:",inline"`
}

func (r *MongoRepository) Insert(ctx context.Context, post domain.Post) error {
	start := time.Now()

	_, err := r.coll.InsertOne(ctx, post)
	return db.HandleExecError(err, "insert post", CollectionName, start)
}

// FindAll returns every post, sorted by the raw date string descending.
// The sort happens once, at the store boundary.
func (r *MongoRepository) FindAll(ctx context.Context) ([]domain.PostWithID, error) {
	start := time.Now()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, db.HandleExecError(err, "find all posts", CollectionName, start)
	}
	defer cursor.Close(ctx)

	var stored []storedPost
	if err := cursor.All(ctx, &stored); err != nil {
		return nil, db.HandleExecError(err, "decode posts", CollectionName, start)
	}

	db.MeasureOperationDuration("find all posts", CollectionName, start)

	posts := make([]domain.PostWithID, 0, len(stored))
	for _, doc := range stored {
		posts = append(posts, domain.PostWithID{
			ID:     doc.ID.Hex(),
			Title:  doc.Post.Title,
			Body:   doc.Post.Body,
			Author: doc.Post.Author,
			Date:   doc.Post.Date,
		})
	}

	return posts, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	start := time.Now()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier reads as a miss, not a server fault.
		return domain.Post{}, ErrPostNotFound
	}

	var post domain.Post
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&post)
	if err := db.HandleQueryError(err, ErrPostNotFound, "find post by id", CollectionName, start); err != nil {
		return domain.Post{}, err
	}

	return post, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id string) error {
	start := time.Now()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostNotFound
	}

	_, err = r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return db.HandleExecError(err, "delete post by id", CollectionName, start)
}

func (r *MongoRepository) Drop(ctx context.Context) error {
	start := time.Now()

	err := r.coll.Drop(ctx)
	return db.HandleExecError(err, "drop posts collection", CollectionName, start)
}
