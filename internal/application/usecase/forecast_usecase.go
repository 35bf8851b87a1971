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

// ForecastUseCase CRUD de pronósticos de demanda (colaborador del motor).
type ForecastUseCase struct {
	forecastRepo repository.ForecastRepository
	productRepo  repository.ProductRepository
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(forecastRepo repository.ForecastRepository, productRepo repository.ProductRepository) *ForecastUseCase {
	return &ForecastUseCase{forecastRepo: forecastRepo, productRepo: productRepo}
}

// Create captura una línea de pronóstico. Cantidad no negativa, producto de la empresa.
func (uc *ForecastUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateForecastRequest) (*dto.ForecastResponse, error) {
	if in.ProductID == "" || in.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	forecast := &entity.Forecast{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
		CreatedBy: userID,
	}
	if err := uc.forecastRepo.Create(ctx, forecast); err != nil {
		return nil, err
	}
	return toForecastResponse(forecast), nil
}

// List lista los pronósticos de la empresa con paginación.
func (uc *ForecastUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.ForecastResponse, error) {
	page.DefaultPage()
	forecasts, err := uc.forecastRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ForecastResponse, 0, len(forecasts))
	for _, f := range forecasts {
		out = append(out, *toForecastResponse(f))
	}
	return out, nil
}

// Delete elimina un pronóstico de la empresa.
func (uc *ForecastUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.forecastRepo.Delete(ctx, id, companyID)
}

func toForecastResponse(f *entity.Forecast) *dto.ForecastResponse {
	return &dto.ForecastResponse{
		ID:        f.ID,
		ProductID: f.ProductID,
		Quantity:  f.Quantity,
		DueDate:   f.DueDate,
		CreatedAt: f.CreatedAt,
	}
}
