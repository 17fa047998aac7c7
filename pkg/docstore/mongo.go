package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Ensure MongoReader implements Reader.
var _ Reader = (*MongoReader)(nil)

// MongoReader reads path-addressed documents from MongoDB.
//
// Paths map onto collections by flattening the collection segments into a
// dotted collection name. Nested documents carry their parent document path
// in the "_parent" field:
//
//	users/u1              -> collection "users", {_id: "u1"}
//	companies/c1/users/u1 -> collection "companies.users", {_id: "u1", _parent: "companies/c1"}
type MongoReader struct {
	db *mongo.Database
}

// NewMongoReader creates a reader over the given database handle.
func NewMongoReader(db *mongo.Database) *MongoReader {
	return &MongoReader{db: db}
}

// Read fetches the single document at path. Returns ErrNotFound when the
// document does not exist and ErrInvalidPath for malformed paths.
func (r *MongoReader) Read(ctx context.Context, path string) (Document, error) {
	segments, err := splitPath(path)
	if err != nil {
		return Document{}, err
	}

	id := segments[len(segments)-1]
	filter := bson.M{"_id": id}
	if len(segments) > 2 {
		filter["_parent"] = strings.Join(segments[:len(segments)-2], "/")
	}

	var raw bson.M
	if err := r.db.Collection(collectionName(segments)).FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		// Storage bookkeeping fields are not part of the document data.
		if k == "_id" || k == "_parent" {
			continue
		}
		fields[k] = v
	}

	return Document{ID: id, Fields: fields}, nil
}
