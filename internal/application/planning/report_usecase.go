package planning

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// PlanReportUseCase genera el PDF con las recomendaciones de la última corrida
// de un plan. Solo lecturas; el documento no se persiste.
type PlanReportUseCase struct {
	planRepo    repository.PlanRepository
	recRepo     repository.RecommendationRepository
	productRepo repository.ProductRepository
	generator   PlanReportGenerator
}

// NewPlanReportUseCase construye el caso de uso del reporte.
func NewPlanReportUseCase(
	planRepo repository.PlanRepository,
	recRepo repository.RecommendationRepository,
	productRepo repository.ProductRepository,
	generator PlanReportGenerator,
) *PlanReportUseCase {
	return &PlanReportUseCase{
		planRepo:    planRepo,
		recRepo:     recRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// GenerateReport devuelve los bytes del PDF de la última corrida del plan.
func (uc *PlanReportUseCase) GenerateReport(ctx context.Context, companyID, planID string) ([]byte, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.CompanyID != companyID {
		return nil, domain.ErrPlanNotFound
	}

	recs, err := uc.recRepo.ListLatestRun(ctx, companyID, planID)
	if err != nil {
		return nil, err
	}

	// Resolver SKU/nombre de los productos referenciados para el reporte.
	products := make(map[string]*entity.Product, len(recs))
	for _, rec := range recs {
		if _, ok := products[rec.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(rec.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			products[rec.ProductID] = p
		}
	}

	return uc.generator.GeneratePlanReport(ctx, plan, recs, products)
}
