package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

type productDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"nombre"`
	Price        float64   `bson:"precio"`
	Category     string    `bson:"categoria,omitempty"`
	RegisteredAt time.Time `bson:"fecha_registro"`
}

func (d productDoc) toEntity() *entity.Product {
	return &entity.Product{
		ID:           d.ID,
		Name:         d.Name,
		Price:        decimal.NewFromFloat(d.Price),
		Category:     d.Category,
		RegisteredAt: d.RegisteredAt,
	}
}

type stockDoc struct {
	ProductID string    `bson:"_id"`
	Quantity  int64     `bson:"cantidad"`
	UpdatedAt time.Time `bson:"fecha_actualizacion"`
}

// ProductRepository adaptador Mongo para productos.
type ProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository construye el repositorio.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(colProducts)}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	doc := productDoc{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price.InexactFloat64(),
		Category:     product.Category,
		RegisteredAt: product.RegisteredAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	return doc.toEntity(), nil
}

// List resuelve el stock de cada producto con $lookup contra la colección
// companion. Un producto sin registro de stock se lista con cantidad 0.
func (r *ProductRepository) List(ctx context.Context, q string) ([]*entity.ProductWithStock, error) {
	pipeline := mongo.Pipeline{}
	if q != "" {
		re := containsRegex(q)
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"nombre": re},
			bson.M{"categoria": re},
		}}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         colStock,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "stock",
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "fecha_registro", Value: -1}}}},
	)
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.ProductWithStock
	for cursor.Next(ctx) {
		var doc struct {
			productDoc `bson:",inline"`
			Stock      []stockDoc `bson:"stock"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar producto: %w", err)
		}
		row := &entity.ProductWithStock{Product: *doc.productDoc.toEntity()}
		if len(doc.Stock) > 0 {
			row.Stock = doc.Stock[0].Quantity
		}
		out = append(out, row)
	}
	return out, cursor.Err()
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch repository.ProductPatch) (repository.UpdateResult, error) {
	set := bson.M{}
	setIfString(set, "nombre", patch.Name)
	setIfString(set, "categoria", patch.Category)
	if patch.Price != nil {
		set["precio"] = patch.Price.InexactFloat64()
	}
	if len(set) == 0 {
		return repository.UpdateResult{}, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("actualizar producto: %w", err)
	}
	return repository.UpdateResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("eliminar producto: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount > 0}, nil
}

// StockRepository adaptador Mongo para el stock (1 documento por producto,
// _id = id del producto).
type StockRepository struct {
	col *mongo.Collection
}

// NewStockRepository construye el repositorio.
func NewStockRepository(db *mongo.Database) *StockRepository {
	return &StockRepository{col: db.Collection(colStock)}
}

func (r *StockRepository) Get(ctx context.Context, productID string) (*entity.Stock, error) {
	var doc stockDoc
	err := r.col.FindOne(ctx, bson.M{"_id": productID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar stock: %w", err)
	}
	return &entity.Stock{ProductID: doc.ProductID, Quantity: doc.Quantity, UpdatedAt: doc.UpdatedAt}, nil
}

func (r *StockRepository) Upsert(ctx context.Context, stock *entity.Stock) error {
	opts := mongoUpsert()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": stock.ProductID},
		bson.M{"$set": bson.M{
			"cantidad":            stock.Quantity,
			"fecha_actualizacion": stock.UpdatedAt,
		}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("guardar stock: %w", err)
	}
	return nil
}

// Decrement escritura condicional: solo descuenta si la cantidad actual
// alcanza. La condición y el $inc van en la misma operación, así que dos
// cajas concurrentes nunca dejan el stock negativo.
func (r *StockRepository) Decrement(ctx context.Context, productID string, qty int64) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": productID, "cantidad": bson.M{"$gte": qty}},
		bson.M{
			"$inc": bson.M{"cantidad": -qty},
			"$set": bson.M{"fecha_actualizacion": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, fmt.Errorf("descontar stock: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *StockRepository) Delete(ctx context.Context, productID string) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("eliminar stock: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount > 0}, nil
}
