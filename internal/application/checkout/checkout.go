package checkout

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

// Service procesa ventas: valida el carrito línea a línea, descuenta stock,
// registra la venta y emite la factura con su PDF.
type Service struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	stocks    repository.StockRepository
	sales     repository.SaleRepository
	invoices  repository.InvoiceRepository
	pdf       InvoicePDFRenderer
	log       *logger.Logger
}

// NewService construye el servicio de checkout.
func NewService(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	stocks repository.StockRepository,
	sales repository.SaleRepository,
	invoices repository.InvoiceRepository,
	pdf InvoicePDFRenderer,
	log *logger.Logger,
) *Service {
	return &Service{
		customers: customers,
		products:  products,
		stocks:    stocks,
		sales:     sales,
		invoices:  invoices,
		pdf:       pdf,
		log:       log,
	}
}

// Checkout procesa el carrito completo como una sola venta.
//
// Cada línea se valida y descuenta de forma independiente: una línea con
// producto inexistente, cantidad no positiva o stock insuficiente se salta
// con una advertencia y el resto sigue. El descuento de stock es una
// escritura condicional por producto, así dos cajas concurrentes nunca dejan
// cantidades negativas. Los precios y el total se calculan siempre en el
// servidor con el precio vigente del producto.
//
// Si ninguna línea sobrevive no se crea nada y se devuelven las advertencias
// junto al error. Una línea ya descontada no se revierte si una posterior
// falla; esa es la semántica de caja: lo cobrado, cobrado está.
func (s *Service) Checkout(ctx context.Context, seller string, in dto.CheckoutRequest) (*dto.CheckoutResponse, []string, error) {
	if len(in.Items) == 0 {
		return nil, nil, domain.ErrEmptyCart
	}
	customer, err := s.customers.GetByID(ctx, strings.TrimSpace(in.CustomerID))
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, domain.ErrNotFound
	}

	var (
		accepted []entity.SaleItem
		warnings []string
		total    = decimal.Zero
	)
	for _, line := range in.Items {
		productID := strings.TrimSpace(line.ProductID)
		if line.Quantity <= 0 {
			warnings = append(warnings, fmt.Sprintf("Cantidad inválida para el producto %s", productID))
			continue
		}
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			s.log.Warn().Err(err).Str("producto_id", productID).Msg("consultar producto en checkout")
			warnings = append(warnings, fmt.Sprintf("Producto no encontrado: %s", productID))
			continue
		}
		if product == nil {
			warnings = append(warnings, fmt.Sprintf("Producto no encontrado: %s", productID))
			continue
		}
		applied, err := s.stocks.Decrement(ctx, productID, line.Quantity)
		if err != nil {
			s.log.Warn().Err(err).Str("producto_id", productID).Msg("descontar stock en checkout")
			warnings = append(warnings, fmt.Sprintf("No se pudo descontar stock de %s", product.Name))
			continue
		}
		if !applied {
			available := int64(0)
			if stock, err := s.stocks.Get(ctx, productID); err == nil && stock != nil {
				available = stock.Quantity
			}
			warnings = append(warnings, fmt.Sprintf("Stock insuficiente para %s. Disponible: %d", product.Name, available))
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(line.Quantity))
		accepted = append(accepted, entity.SaleItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	if len(accepted) == 0 {
		return nil, warnings, domain.ErrEmptyCheckout
	}

	now := time.Now().UTC()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		Items:      accepted,
		Total:      total,
		Date:       now,
		Seller:     seller,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		// El stock ya fue descontado; se pierde el registro de la venta.
		s.log.Error().Err(err).Str("venta_id", sale.ID).Msg("registrar venta con stock ya descontado")
		return nil, warnings, err
	}

	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		SaleID:        sale.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		Items:         accepted,
		Total:         total,
		Date:          now,
		Seller:        seller,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		s.log.Error().Err(err).Str("venta_id", sale.ID).Msg("registrar factura")
		return nil, warnings, err
	}

	if raw, err := s.pdf.RenderInvoice(invoice); err != nil {
		s.log.Warn().Err(err).Str("factura_id", invoice.ID).Msg("generar pdf de factura")
	} else {
		encoded := base64.StdEncoding.EncodeToString(raw)
		if err := s.invoices.AttachPDF(ctx, invoice.ID, encoded); err != nil {
			s.log.Warn().Err(err).Str("factura_id", invoice.ID).Msg("guardar pdf de factura")
		}
	}

	s.log.Info().
		Str("venta_id", sale.ID).
		Str("cliente_id", customer.ID).
		Str("total", total.String()).
		Int("lineas", len(accepted)).
		Msg("venta procesada")

	return &dto.CheckoutResponse{
		SaleID:    sale.ID,
		InvoiceID: invoice.ID,
		Total:     total,
		Items:     toSaleItemResponses(accepted),
		Warnings:  warnings,
	}, warnings, nil
}

// ListInvoices historial de facturas, más reciente primero.
func (s *Service) ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	list, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// GetInvoice factura asociada a una venta.
func (s *Service) GetInvoice(ctx context.Context, saleID string) (*dto.InvoiceResponse, error) {
	invoice, err := s.invoices.GetBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// DownloadInvoicePDF devuelve el PDF almacenado de la factura de una venta.
func (s *Service) DownloadInvoicePDF(ctx context.Context, saleID string) ([]byte, string, error) {
	invoice, err := s.invoices.GetBySaleID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil || invoice.PDFData == "" {
		return nil, "", domain.ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(invoice.PDFData)
	if err != nil {
		return nil, "", fmt.Errorf("decodificar pdf de factura: %w", err)
	}
	return raw, fmt.Sprintf("factura_%s.pdf", invoice.SaleID), nil
}

func toSaleItemResponses(items []entity.SaleItem) []dto.SaleItemResponse {
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		SaleID:        inv.SaleID,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Items:         toSaleItemResponses(inv.Items),
		Total:         inv.Total,
		Date:          inv.Date,
		Seller:        inv.Seller,
		HasPDF:        inv.PDFData != "",
	}
}
