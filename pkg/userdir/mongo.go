package userdir

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoDirectory reads users from a MongoDB collection, "users" by default.
type MongoDirectory struct {
	coll *mongo.Collection
}

type MongoOption func(*mongoSettings)

type mongoSettings struct {
	collection string
}

// WithCollection points the directory at a different collection.
func WithCollection(name string) MongoOption {
	return func(s *mongoSettings) {
		if name != "" {
			s.collection = name
		}
	}
}

func NewMongoDirectory(db *mongo.Database, opts ...MongoOption) *MongoDirectory {
	settings := mongoSettings{collection: "users"}
	for _, opt := range opts {
		opt(&settings)
	}
	return &MongoDirectory{coll: db.Collection(settings.collection)}
}

// userDoc is the stored document shape.
type userDoc struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
	Password string `bson:"password"`
	Name     string `bson:"name,omitempty"`
	Email    string `bson:"email,omitempty"`
}

func (doc userDoc) user() User {
	return User{
		ID:       doc.ID,
		Username: doc.Username,
		Password: doc.Password,
		Name:     doc.Name,
		Email:    doc.Email,
	}
}

func (d *MongoDirectory) FindByUsername(ctx context.Context, username string) ([]User, error) {
	cur, err := d.coll.Find(ctx,
		bson.M{"username": username},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("userdir: query users: %w", err)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("userdir: read users: %w", err)
	}

	out := make([]User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.user())
	}
	return out, nil
}

func (d *MongoDirectory) FindByID(ctx context.Context, id string) (User, error) {
	var doc userDoc
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("userdir: query user %q: %w", id, err)
	}
	return doc.user(), nil
}
