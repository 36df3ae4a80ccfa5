package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository secuencias por entidad sobre la colección counters.
type CounterRepository struct {
	col *mongo.Collection
}

// NewCounterRepository construye el repositorio.
func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{col: db.Collection(colCounters)}
}

// Next incrementa y devuelve la secuencia en una sola operación atómica.
// Si el contador no existe lo crea en 1. Un fallo de base devuelve error;
// nunca se inventa un número.
func (r *CounterRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("contador %q: %w", name, err)
	}
	return doc.Seq, nil
}
