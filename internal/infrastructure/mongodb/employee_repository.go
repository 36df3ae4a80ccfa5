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

type employeeDoc struct {
	ID             string    `bson:"_id"`
	SeqID          int64     `bson:"id_empleado"`
	DocumentNumber string    `bson:"nro_documento"`
	Name           string    `bson:"nombre"`
	Surname        string    `bson:"apellido"`
	Age            int       `bson:"edad"`
	Gender         string    `bson:"genero,omitempty"`
	Position       string    `bson:"cargo,omitempty"`
	Email          string    `bson:"correo,omitempty"`
	Phone          string    `bson:"nro_contacto,omitempty"`
	Status         string    `bson:"estado"`
	Notes          string    `bson:"observaciones,omitempty"`
	RegisteredAt   time.Time `bson:"fecha_registro"`
}

func (d employeeDoc) toEntity() *entity.Employee {
	return &entity.Employee{
		ID:             d.ID,
		SeqID:          d.SeqID,
		DocumentNumber: d.DocumentNumber,
		Name:           d.Name,
		Surname:        d.Surname,
		Age:            d.Age,
		Gender:         d.Gender,
		Position:       d.Position,
		Email:          d.Email,
		Phone:          d.Phone,
		Status:         d.Status,
		Notes:          d.Notes,
		RegisteredAt:   d.RegisteredAt,
	}
}

func toEmployeeDoc(e *entity.Employee) employeeDoc {
	return employeeDoc{
		ID:             e.ID,
		SeqID:          e.SeqID,
		DocumentNumber: e.DocumentNumber,
		Name:           e.Name,
		Surname:        e.Surname,
		Age:            e.Age,
		Gender:         e.Gender,
		Position:       e.Position,
		Email:          e.Email,
		Phone:          e.Phone,
		Status:         e.Status,
		Notes:          e.Notes,
		RegisteredAt:   e.RegisteredAt,
	}
}

// EmployeeRepository adaptador Mongo para empleados.
type EmployeeRepository struct {
	col *mongo.Collection
}

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(colEmployees)}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	if _, err := r.col.InsertOne(ctx, toEmployeeDoc(employee)); err != nil {
		return fmt.Errorf("insertar empleado: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var doc employeeDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar empleado: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *EmployeeRepository) GetByDocument(ctx context.Context, documentNumber string) (*entity.Employee, error) {
	var doc employeeDoc
	err := r.col.FindOne(ctx, bson.M{"nro_documento": documentNumber}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar empleado por documento: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *EmployeeRepository) List(ctx context.Context, q string) ([]*entity.Employee, error) {
	filter := bson.M{}
	if q != "" {
		re := containsRegex(q)
		filter = bson.M{"$or": bson.A{
			bson.M{"nombre": re},
			bson.M{"apellido": re},
			bson.M{"nro_documento": re},
		}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "fecha_registro", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.Employee
	for cursor.Next(ctx) {
		var doc employeeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar empleado: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, patch repository.EmployeePatch) (repository.UpdateResult, error) {
	set := bson.M{}
	setIfString(set, "nro_documento", patch.DocumentNumber)
	setIfString(set, "nombre", patch.Name)
	setIfString(set, "apellido", patch.Surname)
	setIfString(set, "genero", patch.Gender)
	setIfString(set, "cargo", patch.Position)
	setIfString(set, "correo", patch.Email)
	setIfString(set, "nro_contacto", patch.Phone)
	setIfString(set, "estado", patch.Status)
	setIfString(set, "observaciones", patch.Notes)
	if patch.Age != nil {
		set["edad"] = *patch.Age
	}
	if len(set) == 0 {
		return repository.UpdateResult{}, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("actualizar empleado: %w", err)
	}
	return repository.UpdateResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("eliminar empleado: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount > 0}, nil
}
