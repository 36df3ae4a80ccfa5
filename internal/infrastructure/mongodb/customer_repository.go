package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

type customerDoc struct {
	ID           string    `bson:"_id"`
	SeqID        int64     `bson:"id_cliente"`
	Name         string    `bson:"nombre"`
	Email        string    `bson:"email,omitempty"`
	Phone        string    `bson:"telefono,omitempty"`
	Address      string    `bson:"direccion,omitempty"`
	City         string    `bson:"ciudad,omitempty"`
	Country      string    `bson:"pais,omitempty"`
	RegisteredAt time.Time `bson:"fecha_registro"`
}

func (d customerDoc) toEntity() *entity.Customer {
	return &entity.Customer{
		ID:           d.ID,
		SeqID:        d.SeqID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Address:      d.Address,
		City:         d.City,
		Country:      d.Country,
		RegisteredAt: d.RegisteredAt,
	}
}

func toCustomerDoc(c *entity.Customer) customerDoc {
	return customerDoc{
		ID:           c.ID,
		SeqID:        c.SeqID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		Country:      c.Country,
		RegisteredAt: c.RegisteredAt,
	}
}

// CustomerRepository adaptador Mongo para clientes.
type CustomerRepository struct {
	col *mongo.Collection
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(colCustomers)}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if _, err := r.col.InsertOne(ctx, toCustomerDoc(customer)); err != nil {
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var doc customerDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *CustomerRepository) List(ctx context.Context, q string) ([]*entity.Customer, error) {
	filter := bson.M{}
	if q != "" {
		re := containsRegex(q)
		filter = bson.M{"$or": bson.A{
			bson.M{"nombre": re},
			bson.M{"email": re},
			bson.M{"ciudad": re},
			bson.M{"pais": re},
		}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "fecha_registro", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.Customer
	for cursor.Next(ctx) {
		var doc customerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar cliente: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, id string, patch repository.CustomerPatch) (repository.UpdateResult, error) {
	set := bson.M{}
	setIfString(set, "nombre", patch.Name)
	setIfString(set, "email", patch.Email)
	setIfString(set, "telefono", patch.Phone)
	setIfString(set, "direccion", patch.Address)
	setIfString(set, "ciudad", patch.City)
	setIfString(set, "pais", patch.Country)
	if len(set) == 0 {
		return repository.UpdateResult{}, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("actualizar cliente: %w", err)
	}
	return repository.UpdateResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("eliminar cliente: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount > 0}, nil
}

// setIfString agrega el campo al $set solo si el patch lo trae.
func setIfString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
