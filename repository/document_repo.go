package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tieubaoca/pdf-qa-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type DocumentRepo interface {
	SaveDocument(ctx context.Context, text string) (string, error)
	GetDocument(ctx context.Context, id string) (*types.Document, error)
}

type documentRepo struct {
	collection *mongo.Collection
}

func NewDocumentRepo(collection *mongo.Collection) DocumentRepo {
	return &documentRepo{
		collection: collection,
	}
}

func (r *documentRepo) SaveDocument(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", types.ErrNoTextExtracted
	}
	result, err := r.collection.InsertOne(ctx, bson.M{"text": text})
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrStorageWriteFailed, err)
	}
	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// GetDocument treats a malformed hex id the same as a missing document: the
// caller only ever learns "not found".
func (r *documentRepo) GetDocument(ctx context.Context, id string) (*types.Document, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrDocumentNotFound
	}
	var doc types.Document
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
