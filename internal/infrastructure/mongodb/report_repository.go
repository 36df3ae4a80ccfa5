package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

// ReportRepository agregaciones de solo lectura sobre ventas y clientes.
type ReportRepository struct {
	sales     *mongo.Collection
	customers *mongo.Collection
}

// NewReportRepository construye el repositorio.
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		sales:     db.Collection(colSales),
		customers: db.Collection(colCustomers),
	}
}

// SalesSummary total, número de transacciones y promedio del rango. Un rango
// sin ventas devuelve ceros.
func (r *ReportRepository) SalesSummary(ctx context.Context, start, end time.Time) (repository.SalesSummaryResult, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"fecha": bson.M{"$gte": start, "$lte": end}}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"total":    bson.M{"$sum": "$total"},
			"count":    bson.M{"$sum": 1},
			"promedio": bson.M{"$avg": "$total"},
		}}},
	}
	cursor, err := r.sales.Aggregate(ctx, pipeline)
	if err != nil {
		return repository.SalesSummaryResult{}, fmt.Errorf("resumen de ventas: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return repository.SalesSummaryResult{}, fmt.Errorf("resumen de ventas: %w", err)
		}
		return repository.SalesSummaryResult{
			TotalAmount:   decimal.Zero,
			AverageAmount: decimal.Zero,
		}, nil
	}
	var doc struct {
		Total    float64 `bson:"total"`
		Count    int64   `bson:"count"`
		Promedio float64 `bson:"promedio"`
	}
	if err := cursor.Decode(&doc); err != nil {
		return repository.SalesSummaryResult{}, fmt.Errorf("decodificar resumen: %w", err)
	}
	return repository.SalesSummaryResult{
		TotalAmount:      decimal.NewFromFloat(doc.Total),
		TransactionCount: doc.Count,
		AverageAmount:    decimal.NewFromFloat(doc.Promedio),
	}, nil
}

// SalesDetail filas del detalle con el nombre del cliente resuelto.
func (r *ReportRepository) SalesDetail(ctx context.Context, start, end time.Time) ([]repository.SalesDetailRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"fecha": bson.M{"$gte": start, "$lte": end}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         colCustomers,
			"localField":   "cliente_id",
			"foreignField": "_id",
			"as":           "cliente",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "fecha", Value: -1}}}},
	}
	cursor, err := r.sales.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("detalle de ventas: %w", err)
	}
	defer cursor.Close(ctx)

	var out []repository.SalesDetailRow
	for cursor.Next(ctx) {
		var doc struct {
			saleDoc  `bson:",inline"`
			Customer []customerDoc `bson:"cliente"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar detalle: %w", err)
		}
		row := repository.SalesDetailRow{
			SaleID:    doc.ID,
			ItemCount: int64(len(doc.Items)),
			Total:     decimal.NewFromFloat(doc.Total),
			Date:      doc.Date,
			Seller:    doc.Seller,
		}
		if len(doc.Customer) > 0 {
			row.CustomerName = doc.Customer[0].Name
		}
		out = append(out, row)
	}
	return out, cursor.Err()
}

// CustomersByCountry conteo por país, descendente. Clientes sin país se
// agrupan como "Desconocido".
func (r *ReportRepository) CustomersByCountry(ctx context.Context) ([]repository.CountryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$ifNull": bson.A{"$pais", "Desconocido"}},
			"total": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}
	cursor, err := r.customers.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("clientes por país: %w", err)
	}
	defer cursor.Close(ctx)

	var out []repository.CountryCount
	for cursor.Next(ctx) {
		var doc struct {
			Country string `bson:"_id"`
			Total   int64  `bson:"total"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar conteo: %w", err)
		}
		if doc.Country == "" {
			doc.Country = "Desconocido"
		}
		out = append(out, repository.CountryCount{Country: doc.Country, Count: doc.Total})
	}
	return out, cursor.Err()
}
