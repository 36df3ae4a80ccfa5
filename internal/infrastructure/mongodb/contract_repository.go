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

type contractDoc struct {
	ID           string     `bson:"_id"`
	SeqID        int64      `bson:"id_contrato"`
	EmployeeID   string     `bson:"empleado_id"`
	Type         string     `bson:"tipo_contrato"`
	StartDate    time.Time  `bson:"fecha_inicio"`
	EndDate      *time.Time `bson:"fecha_fin,omitempty"`
	Salary       float64    `bson:"salario"`
	Position     string     `bson:"cargo,omitempty"`
	Notes        string     `bson:"observaciones,omitempty"`
	PDFData      string     `bson:"pdf_data,omitempty"`
	RegisteredAt time.Time  `bson:"fecha_registro"`
}

func (d contractDoc) toEntity() *entity.Contract {
	return &entity.Contract{
		ID:           d.ID,
		SeqID:        d.SeqID,
		EmployeeID:   d.EmployeeID,
		Type:         d.Type,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Salary:       decimal.NewFromFloat(d.Salary),
		Position:     d.Position,
		Notes:        d.Notes,
		PDFData:      d.PDFData,
		RegisteredAt: d.RegisteredAt,
	}
}

func toContractDoc(c *entity.Contract) contractDoc {
	return contractDoc{
		ID:           c.ID,
		SeqID:        c.SeqID,
		EmployeeID:   c.EmployeeID,
		Type:         c.Type,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Salary:       c.Salary.InexactFloat64(),
		Position:     c.Position,
		Notes:        c.Notes,
		PDFData:      c.PDFData,
		RegisteredAt: c.RegisteredAt,
	}
}

// ContractRepository adaptador Mongo para contratos.
type ContractRepository struct {
	col *mongo.Collection
}

// NewContractRepository construye el repositorio.
func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{col: db.Collection(colContracts)}
}

func (r *ContractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	if _, err := r.col.InsertOne(ctx, toContractDoc(contract)); err != nil {
		return fmt.Errorf("insertar contrato: %w", err)
	}
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	var doc contractDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar contrato: %w", err)
	}
	return doc.toEntity(), nil
}

// ListWithEmployee resuelve el empleado de cada contrato con $lookup. Un
// contrato cuyo empleado fue borrado se lista igual, con los campos vacíos.
func (r *ContractRepository) ListWithEmployee(ctx context.Context) ([]*entity.ContractWithEmployee, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         colEmployees,
			"localField":   "empleado_id",
			"foreignField": "_id",
			"as":           "empleado",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "fecha_registro", Value: -1}}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("listar contratos: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.ContractWithEmployee
	for cursor.Next(ctx) {
		var doc struct {
			contractDoc `bson:",inline"`
			Employee    []employeeDoc `bson:"empleado"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar contrato: %w", err)
		}
		row := &entity.ContractWithEmployee{Contract: *doc.contractDoc.toEntity()}
		if len(doc.Employee) > 0 {
			row.EmployeeName = doc.Employee[0].toEntity().FullName()
			row.EmployeeDocument = doc.Employee[0].DocumentNumber
		}
		out = append(out, row)
	}
	return out, cursor.Err()
}

func (r *ContractRepository) Update(ctx context.Context, id string, patch repository.ContractPatch) (repository.UpdateResult, error) {
	set := bson.M{}
	unset := bson.M{}
	setIfString(set, "tipo_contrato", patch.Type)
	setIfString(set, "cargo", patch.Position)
	setIfString(set, "observaciones", patch.Notes)
	if patch.StartDate != nil {
		set["fecha_inicio"] = *patch.StartDate
	}
	if patch.ClearEndDate {
		unset["fecha_fin"] = ""
	} else if patch.EndDate != nil {
		set["fecha_fin"] = *patch.EndDate
	}
	if patch.Salary != nil {
		set["salario"] = patch.Salary.InexactFloat64()
	}
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	if len(update) == 0 {
		return repository.UpdateResult{}, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("actualizar contrato: %w", err)
	}
	return repository.UpdateResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

func (r *ContractRepository) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("eliminar contrato: %w", err)
	}
	return repository.DeleteResult{Deleted: res.DeletedCount > 0}, nil
}

func (r *ContractRepository) AttachPDF(ctx context.Context, id, pdfBase64 string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"pdf_data": pdfBase64}})
	if err != nil {
		return fmt.Errorf("guardar pdf de contrato: %w", err)
	}
	return nil
}
