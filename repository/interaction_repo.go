package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tieubaoca/pdf-qa-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type InteractionRepo interface {
	CreateInteraction(ctx context.Context, interaction *types.Interaction) error
	ListInteractions(ctx context.Context, pdfID string) ([]*types.Interaction, error)
}

type interactionRepo struct {
	collection *mongo.Collection
}

func NewInteractionRepo(collection *mongo.Collection) InteractionRepo {
	return &interactionRepo{
		collection: collection,
	}
}

// CreateInteraction stamps the record with the write time before inserting.
func (r *interactionRepo) CreateInteraction(ctx context.Context, interaction *types.Interaction) error {
	interaction.Timestamp = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, interaction)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrStorageWriteFailed, err)
	}
	return nil
}

// ListInteractions returns every recorded interaction, oldest first. A
// non-empty pdfID restricts the result to that document.
func (r *interactionRepo) ListInteractions(ctx context.Context, pdfID string) ([]*types.Interaction, error) {
	filter := bson.M{}
	if pdfID != "" {
		filter["pdf_id"] = pdfID
	}
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []*types.Interaction
	for cursor.Next(ctx) {
		var interaction types.Interaction
		if err := cursor.Decode(&interaction); err != nil {
			return nil, err
		}
		interactions = append(interactions, &interaction)
	}
	return interactions, cursor.Err()
}
