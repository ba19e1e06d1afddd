package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/avasilyev/blogd/internal/common/db"
	"github.com/avasilyev/blogd/internal/user/domain"
)

const CollectionName = "users"

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Insert(ctx context.Context, user domain.EncryptedUser) error
	FindByUsername(ctx context.Context, username string) (domain.EncryptedUser, error)
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(CollectionName)}
}

// Insert appends one user document. Usernames carry no uniqueness
// constraint: two inserts with the same username both succeed and both
// records remain.
func (r *MongoRepository) Insert(ctx context.Context, user domain.EncryptedUser) error {
	start := time.Now()

	_, err := r.coll.InsertOne(ctx, user)
	return db.HandleExecError(err, "insert user", CollectionName, start)
}

// FindByUsername returns the first document matching the username under
// the store's natural order. With duplicate usernames this is whichever
// document the store happens to surface first.
func (r *MongoRepository) FindByUsername(ctx context.Context, username string) (domain.EncryptedUser, error) {
	start := time.Now()

	var user domain.EncryptedUser
	err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by username", CollectionName, start); err != nil {
		return domain.EncryptedUser{}, err
	}

	return user, nil
}
