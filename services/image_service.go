package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ImageStore persists raw meal photos and returns an opaque reference for the
// meal row. Storage lives outside Postgres so photo blobs never bloat the
// relational store.
type ImageStore interface {
	Store(ctx context.Context, ownerKey string, data []byte) (string, error)
}

const (
	imageDatabase   = "image_database"
	imageCollection = "imageCollection"
)

type MongoImageService struct {
	coll *mongo.Collection
}

func NewMongoImageService(client *mongo.Client) *MongoImageService {
	return &MongoImageService{
		coll: client.Database(imageDatabase).Collection(imageCollection),
	}
}

// Store inserts the JPEG bytes keyed by sender phone and upload time, and
// returns a mongodb:// reference string.
func (s *MongoImageService) Store(ctx context.Context, ownerKey string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	doc := bson.M{
		"filename":    fmt.Sprintf("%s_%s", ownerKey, now.Format("20060102_150405")),
		"jpgImage":    primitive.Binary{Data: data},
		"uploaded_at": now,
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return fmt.Sprintf("mongodb://%s/%s", imageDatabase, oid.Hex()), nil
}
