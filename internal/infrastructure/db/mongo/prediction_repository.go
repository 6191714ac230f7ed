package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

const (
	predictionsCollection = "predictions"
	queryTimeout          = 10 * time.Second
)

// PredictionRepository persists the append-only valuation ledger.
type PredictionRepository struct {
	coll *mongo.Collection
}

func NewPredictionRepository(db *mongo.Database) *PredictionRepository {
	return &PredictionRepository{coll: db.Collection(predictionsCollection)}
}

type mongoPrediction struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Username       string               `bson:"username"`
	Property       domain.PropertyInput `bson:"property"`
	PredictedPrice float64              `bson:"predicted_price"`
	PricePerArea   float64              `bson:"price_per_area"`
	Segment        domain.Segment       `bson:"segment"`
	Coordinates    *domain.Coordinates  `bson:"coordinates,omitempty"`
	MediaRefs      string               `bson:"media_refs,omitempty"`
	CreatedAt      time.Time            `bson:"created_at"`
}

// Record appends one ledger row. Rows are never updated or deleted.
func (r *PredictionRepository) Record(ctx context.Context, p *domain.Prediction) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	doc := mongoPrediction{
		Username:       p.Username,
		Property:       p.Property,
		PredictedPrice: p.PredictedPrice,
		PricePerArea:   p.PricePerArea,
		Segment:        p.Segment,
		Coordinates:    p.Coordinates,
		MediaRefs:      p.MediaRefs,
		CreatedAt:      p.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

// List returns ledger rows newest first. An empty username means all users.
func (r *PredictionRepository) List(ctx context.Context, username string) ([]domain.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if username != "" {
		filter["username"] = username
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoPrediction
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}

	out := make([]domain.Prediction, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Prediction{
			ID:             d.ID.Hex(),
			Username:       d.Username,
			Property:       d.Property,
			PredictedPrice: d.PredictedPrice,
			PricePerArea:   d.PricePerArea,
			Segment:        d.Segment,
			Coordinates:    d.Coordinates,
			MediaRefs:      d.MediaRefs,
			CreatedAt:      d.CreatedAt,
		})
	}
	return out, nil
}

// EnsureIndexes creates the indexes the ledger reads depend on.
func (r *PredictionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
