package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mrp-api/internal/application/dto"
	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// Formato de fecha aceptado en los bodies de la API.
const dateLayout = "2006-01-02"

// PlanUseCase CRUD de planes y lectura de sus recomendaciones/auditoría.
// La ejecución del plan vive en application/planning (motor transaccional).
type PlanUseCase struct {
	planRepo  repository.PlanRepository
	recRepo   repository.RecommendationRepository
	auditRepo repository.AuditRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(
	planRepo repository.PlanRepository,
	recRepo repository.RecommendationRepository,
	auditRepo repository.AuditRepository,
) *PlanUseCase {
	return &PlanUseCase{planRepo: planRepo, recRepo: recRepo, auditRepo: auditRepo}
}

// Create crea un plan en estado draft. Valida nombre, formato de fechas y el
// invariante horizon_start <= horizon_end.
func (uc *PlanUseCase) Create(ctx context.Context, companyID string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.HorizonStart)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.HorizonEnd)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	plan := &entity.Plan{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		HorizonStart: start,
		HorizonEnd:   end,
		Status:       entity.PlanStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !plan.ValidHorizon() {
		return nil, domain.ErrInvalidHorizon
	}
	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByID obtiene un plan de la empresa.
func (uc *PlanUseCase) GetByID(ctx context.Context, companyID, planID string) (*dto.PlanResponse, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.CompanyID != companyID {
		return nil, domain.ErrPlanNotFound
	}
	return toPlanResponse(plan), nil
}

// List lista los planes de la empresa con paginación.
func (uc *PlanUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.PlanResponse, error) {
	page.DefaultPage()
	plans, err := uc.planRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// ListRecommendations pagina las recomendaciones persistidas de un plan.
func (uc *PlanUseCase) ListRecommendations(ctx context.Context, companyID, planID string, page dto.PageRequest) (*dto.RecommendationListResponse, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.CompanyID != companyID {
		return nil, domain.ErrPlanNotFound
	}
	page.DefaultPage()
	recs, total, err := uc.recRepo.ListByPlan(ctx, companyID, planID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		items = append(items, ToRecommendationResponse(*r))
	}
	return &dto.RecommendationListResponse{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// ListAudit devuelve los eventos de auditoría registrados para un plan.
func (uc *PlanUseCase) ListAudit(ctx context.Context, companyID, planID string, page dto.PageRequest) ([]dto.AuditEventResponse, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.CompanyID != companyID {
		return nil, domain.ErrPlanNotFound
	}
	page.DefaultPage()
	events, err := uc.auditRepo.ListByEntity(ctx, companyID, planID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.AuditEventResponse{
			ID:        e.ID,
			EventType: e.EventType,
			EntityID:  e.EntityID,
			Payload:   string(e.Payload),
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		HorizonStart: p.HorizonStart,
		HorizonEnd:   p.HorizonEnd,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
}

// ToRecommendationResponse mapea la entidad a su representación HTTP.
func ToRecommendationResponse(r entity.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		ID:            r.ID,
		PlanID:        r.PlanID,
		RunID:         r.RunID,
		ProductID:     r.ProductID,
		Type:          r.Type,
		Quantity:      r.Quantity,
		SuggestedDate: r.SuggestedDate,
		Status:        r.Status,
	}
}
