// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"fmt"

	"page_insights_backend/internal/platform/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no user has the requested identifier.
var ErrNotFound = errors.New("user not found")

// Repository defines the interface for user data operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByIDAndUpdate(ctx context.Context, id string, changes map[string]string) (*User, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a user repository on the shared store handle.
func NewMongoRepository(db *database.Mongo) Repository {
	return NewCollectionRepository(db.Collection(CollectionName))
}

// NewCollectionRepository creates a user repository on an explicit collection.
func NewCollectionRepository(coll *mongo.Collection) Repository {
	return &mongoRepository{coll: coll}
}

// Create inserts user and sets its ID to the one assigned by the store.
func (r *mongoRepository) Create(ctx context.Context, user *User) error {
	user.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = id
	return nil
}

// FindAll returns every stored user. The result is never nil.
func (r *mongoRepository) FindAll(ctx context.Context) ([]User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("finding users: %w", err)
	}
	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("reading users: %w", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// FindByIDAndUpdate overwrites the given fields and returns the updated
// document. An id that is not a valid ObjectID cannot match and yields
// ErrNotFound. With no changes the stored document is returned as is.
func (r *mongoRepository) FindByIDAndUpdate(ctx context.Context, id string, changes map[string]string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	filter := bson.D{{Key: "_id", Value: oid}}

	var res *mongo.SingleResult
	if len(changes) == 0 {
		res = r.coll.FindOne(ctx, filter)
	} else {
		set := bson.D{}
		for _, field := range []string{"name", "email", "picture"} {
			if v, ok := changes[field]; ok {
				set = append(set, bson.E{Key: field, Value: v})
			}
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		res = r.coll.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts)
	}

	var updated User
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}
	return &updated, nil
}
