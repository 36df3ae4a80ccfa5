package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

// ProductUseCase casos de uso para productos y su stock companion.
type ProductUseCase struct {
	repo   repository.ProductRepository
	stocks repository.StockRepository
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stocks repository.StockRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, stocks: stocks, log: log}
}

// Create registra un producto y su registro de stock inicial (puede ser 0).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.LessThanOrEqual(decimalZero) || in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Price:        in.Price,
		Category:     strings.TrimSpace(in.Category),
		RegisteredAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	stock := &entity.Stock{ProductID: product.ID, Quantity: in.InitialStock, UpdatedAt: now}
	if err := uc.stocks.Upsert(ctx, stock); err != nil {
		uc.log.Warn().Err(err).Str("producto_id", product.ID).Msg("crear stock inicial")
	}
	return toProductResponse(&entity.ProductWithStock{Product: *product, Stock: in.InitialStock}), nil
}

// List lista productos con su stock, filtrando por nombre o categoría.
func (uc *ProductUseCase) List(ctx context.Context, q string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Get obtiene un producto con su stock actual.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	var qty int64
	if stock, err := uc.stocks.Get(ctx, product.ID); err == nil && stock != nil {
		qty = stock.Quantity
	}
	return toProductResponse(&entity.ProductWithStock{Product: *product, Stock: qty}), nil
}

// Update aplica un patch al producto; cantidad, si viene, fija el stock
// absoluto del registro companion.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (dto.UpdateResponse, error) {
	if in.Price != nil && in.Price.LessThanOrEqual(decimalZero) {
		return dto.UpdateResponse{}, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return dto.UpdateResponse{}, domain.ErrInvalidInput
	}
	patch := repository.ProductPatch{
		Name:     trimmed(in.Name),
		Price:    in.Price,
		Category: trimmed(in.Category),
	}
	result := dto.UpdateResponse{}
	if !patch.IsEmpty() {
		res, err := uc.repo.Update(ctx, id, patch)
		if err != nil {
			uc.log.Warn().Err(err).Str("producto_id", id).Msg("actualizar producto")
			return dto.UpdateResponse{}, nil
		}
		result.Matched = res.Matched
		result.Modified = res.Modified
	}
	if in.Stock != nil {
		stock := &entity.Stock{ProductID: id, Quantity: *in.Stock, UpdatedAt: time.Now().UTC()}
		if err := uc.stocks.Upsert(ctx, stock); err != nil {
			uc.log.Warn().Err(err).Str("producto_id", id).Msg("ajustar stock")
		} else {
			result.Matched = true
			result.Modified = true
		}
	}
	return result, nil
}

// Delete borra un producto junto con su registro de stock.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (dto.DeleteResponse, error) {
	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Warn().Err(err).Str("producto_id", id).Msg("eliminar producto")
		return dto.DeleteResponse{}, nil
	}
	if _, err := uc.stocks.Delete(ctx, id); err != nil {
		uc.log.Warn().Err(err).Str("producto_id", id).Msg("eliminar stock")
	}
	return dto.DeleteResponse{Deleted: res.Deleted}, nil
}

func toProductResponse(p *entity.ProductWithStock) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Category:     p.Category,
		Stock:        p.Stock,
		RegisteredAt: p.RegisteredAt,
	}
}
