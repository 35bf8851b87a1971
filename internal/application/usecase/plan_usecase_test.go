package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mrp-api/internal/application/dto"
	"github.com/jhoicas/Mrp-api/internal/application/usecase"
	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el CRUD de planes
// ──────────────────────────────────────────────────────────────────────────────

type memPlanRepo struct {
	plans map[string]*entity.Plan
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{plans: make(map[string]*entity.Plan)}
}

func (r *memPlanRepo) Create(_ context.Context, p *entity.Plan) error {
	r.plans[p.ID] = p
	return nil
}

func (r *memPlanRepo) GetByID(_ context.Context, id string) (*entity.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *memPlanRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for _, p := range r.plans {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlanRepo) AcquireRunLock(_ context.Context, _ string) (bool, error) { return true, nil }

func (r *memPlanRepo) TransitionStatus(_ context.Context, _ string, _ []string, _ string) (bool, error) {
	return true, nil
}

type memRecRepo struct {
	recs []*entity.Recommendation
}

func (r *memRecRepo) Create(_ context.Context, rec *entity.Recommendation) error {
	r.recs = append(r.recs, rec)
	return nil
}

func (r *memRecRepo) ListByPlan(_ context.Context, _, planID string, limit, offset int) ([]*entity.Recommendation, int, error) {
	var all []*entity.Recommendation
	for _, rec := range r.recs {
		if rec.PlanID == planID {
			all = append(all, rec)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *memRecRepo) ListLatestRun(_ context.Context, _, _ string) ([]entity.Recommendation, error) {
	return nil, nil
}

type memAuditRepo struct {
	events []*entity.AuditEvent
}

func (r *memAuditRepo) Create(_ context.Context, e *entity.AuditEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *memAuditRepo) ListByEntity(_ context.Context, _, entityID string, _, _ int) ([]*entity.AuditEvent, error) {
	var out []*entity.AuditEvent
	for _, e := range r.events {
		if e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newPlanUC() (*usecase.PlanUseCase, *memPlanRepo, *memRecRepo, *memAuditRepo) {
	planRepo := newMemPlanRepo()
	recRepo := &memRecRepo{}
	auditRepo := &memAuditRepo{}
	return usecase.NewPlanUseCase(planRepo, recRepo, auditRepo), planRepo, recRepo, auditRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanCreate_CreaEnDraft(t *testing.T) {
	uc, repo, _, _ := newPlanUC()

	out, err := uc.Create(context.Background(), "company-a", dto.CreatePlanRequest{
		Name:         "Q1 2026",
		HorizonStart: "2026-01-01",
		HorizonEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "draft", out.Status)
	assert.NotEmpty(t, out.ID)
	require.Contains(t, repo.plans, out.ID)
	assert.Equal(t, "company-a", repo.plans[out.ID].CompanyID)
}

func TestPlanCreate_HorizonteInvertidoRechazado(t *testing.T) {
	uc, _, _, _ := newPlanUC()

	_, err := uc.Create(context.Background(), "company-a", dto.CreatePlanRequest{
		Name:         "inverso",
		HorizonStart: "2026-03-31",
		HorizonEnd:   "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
}

func TestPlanCreate_HorizonteDeUnDiaValido(t *testing.T) {
	uc, _, _, _ := newPlanUC()

	out, err := uc.Create(context.Background(), "company-a", dto.CreatePlanRequest{
		Name:         "un día",
		HorizonStart: "2026-02-01",
		HorizonEnd:   "2026-02-01",
	})
	require.NoError(t, err, "horizon_start == horizon_end es un horizonte válido")
	assert.Equal(t, "draft", out.Status)
}

func TestPlanCreate_FechaMalformadaRechazada(t *testing.T) {
	uc, _, _, _ := newPlanUC()

	_, err := uc.Create(context.Background(), "company-a", dto.CreatePlanRequest{
		Name:         "mala fecha",
		HorizonStart: "01/01/2026",
		HorizonEnd:   "2026-03-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanCreate_NombreVacioRechazado(t *testing.T) {
	uc, _, _, _ := newPlanUC()

	_, err := uc.Create(context.Background(), "company-a", dto.CreatePlanRequest{
		HorizonStart: "2026-01-01",
		HorizonEnd:   "2026-03-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanGetByID_OtraEmpresaNoEncontrado(t *testing.T) {
	uc, repo, _, _ := newPlanUC()
	repo.plans["p1"] = &entity.Plan{ID: "p1", CompanyID: "company-a", Status: entity.PlanStatusDraft}

	_, err := uc.GetByID(context.Background(), "company-b", "p1")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound,
		"un plan de otra empresa se reporta como inexistente")
}

func TestListRecommendations_Pagina(t *testing.T) {
	uc, planRepo, recRepo, _ := newPlanUC()
	planRepo.plans["p1"] = &entity.Plan{ID: "p1", CompanyID: "company-a", Status: entity.PlanStatusCompleted}
	for i := 0; i < 5; i++ {
		recRepo.recs = append(recRepo.recs, &entity.Recommendation{
			ID: string(rune('a' + i)), PlanID: "p1", CompanyID: "company-a",
			Type: entity.RecommendationTypePurchaseOrder, Status: entity.RecommendationStatusPending,
		})
	}

	out, err := uc.ListRecommendations(context.Background(), "company-a", "p1", dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Total)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Limit)
	assert.Equal(t, 2, out.Offset)
}

func TestListRecommendations_PlanInexistente(t *testing.T) {
	uc, _, _, _ := newPlanUC()

	_, err := uc.ListRecommendations(context.Background(), "company-a", "nope", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestListAudit_DevuelveEventosDelPlan(t *testing.T) {
	uc, planRepo, _, auditRepo := newPlanUC()
	planRepo.plans["p1"] = &entity.Plan{ID: "p1", CompanyID: "company-a", Status: entity.PlanStatusCompleted}
	auditRepo.events = []*entity.AuditEvent{
		{ID: "e1", CompanyID: "company-a", EventType: entity.AuditEventRunStarted, EntityID: "p1", CreatedAt: time.Now()},
		{ID: "e2", CompanyID: "company-a", EventType: entity.AuditEventRunCompleted, EntityID: "p1", CreatedAt: time.Now()},
		{ID: "e3", CompanyID: "company-a", EventType: entity.AuditEventRunStarted, EntityID: "otro", CreatedAt: time.Now()},
	}

	out, err := uc.ListAudit(context.Background(), "company-a", "p1", dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, entity.AuditEventRunStarted, out[0].EventType)
	assert.Equal(t, entity.AuditEventRunCompleted, out[1].EventType)
}

func TestNormalizeSearch_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "tornilleria", usecase.NormalizeSearch("Tornillería"))
	assert.Equal(t, "nino", usecase.NormalizeSearch("  NIÑO "))
	assert.Equal(t, "", usecase.NormalizeSearch(""))
}
