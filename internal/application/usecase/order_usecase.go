package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mrp-api/internal/application/dto"
	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// OrderUseCase CRUD de pedidos de venta, órdenes de producción y snapshot de
// existencias: las fuentes de demanda y suministro que consume el motor.
type OrderUseCase struct {
	salesRepo   repository.SalesOrderRepository
	prodRepo    repository.ProductionOrderRepository
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	salesRepo repository.SalesOrderRepository,
	prodRepo repository.ProductionOrderRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		salesRepo:   salesRepo,
		prodRepo:    prodRepo,
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// checkProduct valida que el producto exista y pertenezca a la empresa.
func (uc *OrderUseCase) checkProduct(companyID, productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}

// CreateSalesOrder captura un pedido de venta confirmado (demanda real).
func (uc *OrderUseCase) CreateSalesOrder(ctx context.Context, companyID string, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkProduct(companyID, in.ProductID); err != nil {
		return nil, err
	}
	order := &entity.SalesOrder{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		DueDate:   dueDate,
		Status:    entity.SalesOrderStatusConfirmed,
		CreatedAt: time.Now(),
	}
	if err := uc.salesRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order), nil
}

// ListSalesOrders lista los pedidos de venta de la empresa.
func (uc *OrderUseCase) ListSalesOrders(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.SalesOrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.salesRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toSalesOrderResponse(o))
	}
	return out, nil
}

// CreateProductionOrder captura una orden de producción existente (suministro).
func (uc *OrderUseCase) CreateProductionOrder(ctx context.Context, companyID string, in dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProductionOrderStatusPlanned
	}
	switch status {
	case entity.ProductionOrderStatusPlanned,
		entity.ProductionOrderStatusReleased,
		entity.ProductionOrderStatusInProgress,
		entity.ProductionOrderStatusCompleted,
		entity.ProductionOrderStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkProduct(companyID, in.ProductID); err != nil {
		return nil, err
	}
	order := &entity.ProductionOrder{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		DueDate:   dueDate,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := uc.prodRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toProductionOrderResponse(order), nil
}

// ListProductionOrders lista las órdenes de producción de la empresa.
func (uc *OrderUseCase) ListProductionOrders(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.ProductionOrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.prodRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toProductionOrderResponse(o))
	}
	return out, nil
}

// UpsertStock fija el snapshot on-hand de un producto. Cantidad no negativa.
func (uc *OrderUseCase) UpsertStock(ctx context.Context, companyID, productID string, in dto.UpsertStockRequest) (*dto.StockResponse, error) {
	if in.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkProduct(companyID, productID); err != nil {
		return nil, err
	}
	stock := &entity.Stock{
		CompanyID: companyID,
		ProductID: productID,
		Quantity:  in.Quantity,
		UpdatedAt: time.Now(),
	}
	if err := uc.stockRepo.Upsert(ctx, stock); err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID: stock.ProductID,
		Quantity:  stock.Quantity,
		UpdatedAt: stock.UpdatedAt,
	}, nil
}

func toSalesOrderResponse(o *entity.SalesOrder) *dto.SalesOrderResponse {
	return &dto.SalesOrderResponse{
		ID:        o.ID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		DueDate:   o.DueDate,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func toProductionOrderResponse(o *entity.ProductionOrder) *dto.ProductionOrderResponse {
	return &dto.ProductionOrderResponse{
		ID:        o.ID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		DueDate:   o.DueDate,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
