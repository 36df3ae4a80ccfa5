package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

type saleItemDoc struct {
	ProductID string  `bson:"producto_id"`
	Name      string  `bson:"nombre"`
	UnitPrice float64 `bson:"precio"`
	Quantity  int64   `bson:"cantidad"`
	Subtotal  float64 `bson:"subtotal"`
}

func toSaleItemDocs(items []entity.SaleItem) []saleItemDoc {
	out := make([]saleItemDoc, 0, len(items))
	for _, it := range items {
		out = append(out, saleItemDoc{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.InexactFloat64(),
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal.InexactFloat64(),
		})
	}
	return out
}

func toSaleItems(docs []saleItemDoc) []entity.SaleItem {
	out := make([]entity.SaleItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, entity.SaleItem{
			ProductID: d.ProductID,
			Name:      d.Name,
			UnitPrice: decimal.NewFromFloat(d.UnitPrice),
			Quantity:  d.Quantity,
			Subtotal:  decimal.NewFromFloat(d.Subtotal),
		})
	}
	return out
}

type saleDoc struct {
	ID         string        `bson:"_id"`
	CustomerID string        `bson:"cliente_id"`
	Items      []saleItemDoc `bson:"productos"`
	Total      float64       `bson:"total"`
	Date       time.Time     `bson:"fecha"`
	Seller     string        `bson:"vendedor,omitempty"`
}

// SaleRepository adaptador Mongo para ventas.
type SaleRepository struct {
	col *mongo.Collection
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(colSales)}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	doc := saleDoc{
		ID:         sale.ID,
		CustomerID: sale.CustomerID,
		Items:      toSaleItemDocs(sale.Items),
		Total:      sale.Total.InexactFloat64(),
		Date:       sale.Date,
		Seller:     sale.Seller,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insertar venta: %w", err)
	}
	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var doc saleDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar venta: %w", err)
	}
	return &entity.Sale{
		ID:         doc.ID,
		CustomerID: doc.CustomerID,
		Items:      toSaleItems(doc.Items),
		Total:      decimal.NewFromFloat(doc.Total),
		Date:       doc.Date,
		Seller:     doc.Seller,
	}, nil
}

type invoiceDoc struct {
	ID            string        `bson:"_id"`
	SaleID        string        `bson:"venta_id"`
	CustomerName  string        `bson:"cliente"`
	CustomerEmail string        `bson:"cliente_email,omitempty"`
	Items         []saleItemDoc `bson:"productos"`
	Total         float64       `bson:"total"`
	Date          time.Time     `bson:"fecha"`
	Seller        string        `bson:"vendedor,omitempty"`
	PDFData       string        `bson:"pdf_data,omitempty"`
}

func (d invoiceDoc) toEntity() *entity.Invoice {
	return &entity.Invoice{
		ID:            d.ID,
		SaleID:        d.SaleID,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		Items:         toSaleItems(d.Items),
		Total:         decimal.NewFromFloat(d.Total),
		Date:          d.Date,
		Seller:        d.Seller,
		PDFData:       d.PDFData,
	}
}

// InvoiceRepository adaptador Mongo para el historial de facturas.
type InvoiceRepository struct {
	col *mongo.Collection
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{col: db.Collection(colInvoices)}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	doc := invoiceDoc{
		ID:            invoice.ID,
		SaleID:        invoice.SaleID,
		CustomerName:  invoice.CustomerName,
		CustomerEmail: invoice.CustomerEmail,
		Items:         toSaleItemDocs(invoice.Items),
		Total:         invoice.Total.InexactFloat64(),
		Date:          invoice.Date,
		Seller:        invoice.Seller,
		PDFData:       invoice.PDFData,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insertar factura: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetBySaleID(ctx context.Context, saleID string) (*entity.Invoice, error) {
	var doc invoiceDoc
	err := r.col.FindOne(ctx, bson.M{"venta_id": saleID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar factura: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*entity.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.Invoice
	for cursor.Next(ctx) {
		var doc invoiceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar factura: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	return out, cursor.Err()
}

func (r *InvoiceRepository) AttachPDF(ctx context.Context, id, pdfBase64 string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"pdf_data": pdfBase64}})
	if err != nil {
		return fmt.Errorf("guardar pdf de factura: %w", err)
	}
	return nil
}
