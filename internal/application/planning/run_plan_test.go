package planning_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un store compartido + repos atados a él. El TxRunner fake
// toma un snapshot antes de ejecutar y lo restaura si fn devuelve error,
// imitando el rollback de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	plans       map[string]*entity.Plan
	forecasts   []entity.Forecast
	salesOrders []entity.SalesOrder
	stocks      []entity.Stock
	prodOrders  []entity.ProductionOrder
	activeBOMs  map[string]bool
	recs        []entity.Recommendation

	lockDenied    bool  // simula un advisory lock ya tomado por otra corrida
	failRecCreate error // si no es nil, recRepo.Create falla con este error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		plans:      make(map[string]*entity.Plan),
		activeBOMs: make(map[string]bool),
	}
}

type storeSnapshot struct {
	statuses map[string]string
	recCount int
}

func (s *fakeStore) snapshot() storeSnapshot {
	st := storeSnapshot{statuses: make(map[string]string, len(s.plans)), recCount: len(s.recs)}
	for id, p := range s.plans {
		st.statuses[id] = p.Status
	}
	return st
}

func (s *fakeStore) restore(snap storeSnapshot) {
	for id, status := range snap.statuses {
		s.plans[id].Status = status
	}
	s.recs = s.recs[:snap.recCount]
}

// ── PlanRepository ────────────────────────────────────────────────────────────

type fakePlanRepo struct{ s *fakeStore }

func (r *fakePlanRepo) Create(_ context.Context, p *entity.Plan) error {
	r.s.plans[p.ID] = p
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id string) (*entity.Plan, error) {
	p, ok := r.s.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Plan, error) {
	return nil, nil
}

func (r *fakePlanRepo) AcquireRunLock(_ context.Context, _ string) (bool, error) {
	return !r.s.lockDenied, nil
}

func (r *fakePlanRepo) TransitionStatus(_ context.Context, id string, from []string, to string) (bool, error) {
	p, ok := r.s.plans[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if p.Status == f {
			p.Status = to
			return true, nil
		}
	}
	return false, nil
}

// ── Repos de demanda / suministro ────────────────────────────────────────────

type fakeForecastRepo struct{ s *fakeStore }

func (r *fakeForecastRepo) Create(_ context.Context, _ *entity.Forecast) error { return nil }
func (r *fakeForecastRepo) Delete(_ context.Context, _, _ string) error        { return nil }
func (r *fakeForecastRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Forecast, error) {
	return nil, nil
}

func (r *fakeForecastRepo) ListInHorizon(_ context.Context, companyID string, start, end time.Time) ([]entity.Forecast, error) {
	var out []entity.Forecast
	for _, f := range r.s.forecasts {
		if f.CompanyID == companyID && !f.DueDate.Before(start) && !f.DueDate.After(end) {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeSalesOrderRepo struct{ s *fakeStore }

func (r *fakeSalesOrderRepo) Create(_ context.Context, _ *entity.SalesOrder) error { return nil }
func (r *fakeSalesOrderRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.SalesOrder, error) {
	return nil, nil
}

func (r *fakeSalesOrderRepo) ListConfirmedInHorizon(_ context.Context, companyID string, start, end time.Time) ([]entity.SalesOrder, error) {
	var out []entity.SalesOrder
	for _, o := range r.s.salesOrders {
		if o.CompanyID == companyID && o.Status == entity.SalesOrderStatusConfirmed &&
			!o.DueDate.Before(start) && !o.DueDate.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeStockRepo struct{ s *fakeStore }

func (r *fakeStockRepo) Get(_ context.Context, _, _ string) (*entity.Stock, error) { return nil, nil }
func (r *fakeStockRepo) Upsert(_ context.Context, _ *entity.Stock) error           { return nil }
func (r *fakeStockRepo) ListByCompany(_ context.Context, companyID string) ([]entity.Stock, error) {
	var out []entity.Stock
	for _, st := range r.s.stocks {
		if st.CompanyID == companyID {
			out = append(out, st)
		}
	}
	return out, nil
}

type fakeProdOrderRepo struct{ s *fakeStore }

func (r *fakeProdOrderRepo) Create(_ context.Context, _ *entity.ProductionOrder) error { return nil }
func (r *fakeProdOrderRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.ProductionOrder, error) {
	return nil, nil
}

func (r *fakeProdOrderRepo) ListOpenInHorizon(_ context.Context, companyID string, start, end time.Time, statuses []string) ([]entity.ProductionOrder, error) {
	allowed := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		allowed[st] = true
	}
	var out []entity.ProductionOrder
	for _, o := range r.s.prodOrders {
		if o.CompanyID == companyID && allowed[o.Status] &&
			!o.DueDate.Before(start) && !o.DueDate.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeBOMRepo struct{ s *fakeStore }

func (r *fakeBOMRepo) Upsert(_ context.Context, _ *entity.BOM) error     { return nil }
func (r *fakeBOMRepo) Deactivate(_ context.Context, _, _ string) error   { return nil }
func (r *fakeBOMRepo) ExistsActiveByProduct(_ context.Context, _, productID string) (bool, error) {
	return r.s.activeBOMs[productID], nil
}

func (r *fakeBOMRepo) ListActiveProductIDs(_ context.Context, _ string, productIDs []string) ([]string, error) {
	var out []string
	for _, id := range productIDs {
		if r.s.activeBOMs[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeRecRepo struct{ s *fakeStore }

func (r *fakeRecRepo) Create(_ context.Context, rec *entity.Recommendation) error {
	if r.s.failRecCreate != nil {
		return r.s.failRecCreate
	}
	r.s.recs = append(r.s.recs, *rec)
	return nil
}

func (r *fakeRecRepo) ListByPlan(_ context.Context, _, _ string, _, _ int) ([]*entity.Recommendation, int, error) {
	return nil, 0, nil
}

func (r *fakeRecRepo) ListLatestRun(_ context.Context, _, _ string) ([]entity.Recommendation, error) {
	return nil, nil
}

// ── TxRunner y AuditRecorder ─────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (tr *fakeTxRunner) RunPlanning(_ context.Context, fn func(
	repository.PlanRepository,
	repository.ForecastRepository,
	repository.SalesOrderRepository,
	repository.StockRepository,
	repository.ProductionOrderRepository,
	repository.BOMRepository,
	repository.RecommendationRepository,
) error) error {
	snap := tr.s.snapshot()
	err := fn(
		&fakePlanRepo{tr.s},
		&fakeForecastRepo{tr.s},
		&fakeSalesOrderRepo{tr.s},
		&fakeStockRepo{tr.s},
		&fakeProdOrderRepo{tr.s},
		&fakeBOMRepo{tr.s},
		&fakeRecRepo{tr.s},
	)
	if err != nil {
		tr.s.restore(snap)
	}
	return err
}

type auditCall struct {
	EventType string
	EntityID  string
}

type fakeAudit struct{ calls []auditCall }

func (a *fakeAudit) Record(_ context.Context, _, eventType, entityID string, _ any) {
	a.calls = append(a.calls, auditCall{EventType: eventType, EntityID: entityID})
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: WIDGET-A con faltante 50 y BOM activa; WIDGET-B cubierto.
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
	planID   = "plan-1"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedScenario() *fakeStore {
	s := newFakeStore()
	s.plans[planID] = &entity.Plan{
		ID:           planID,
		CompanyID:    companyA,
		Name:         "Q1",
		HorizonStart: date("2026-01-01"),
		HorizonEnd:   date("2026-03-31"),
		Status:       entity.PlanStatusDraft,
	}
	// Demanda WIDGET-A: 100 pronóstico + 20 pedido = 120
	s.forecasts = []entity.Forecast{
		{ID: "f1", CompanyID: companyA, ProductID: "WIDGET-A", Quantity: d("100"), DueDate: date("2026-02-01")},
		{ID: "f2", CompanyID: companyA, ProductID: "WIDGET-B", Quantity: d("10"), DueDate: date("2026-02-01")},
		// Fuera del horizonte: no debe contar
		{ID: "f3", CompanyID: companyA, ProductID: "WIDGET-A", Quantity: d("999"), DueDate: date("2026-06-01")},
	}
	s.salesOrders = []entity.SalesOrder{
		{ID: "so1", CompanyID: companyA, ProductID: "WIDGET-A", Quantity: d("20"), DueDate: date("2026-02-15"), Status: entity.SalesOrderStatusConfirmed},
	}
	// Suministro WIDGET-A: 30 stock + 40 orden abierta = 70; WIDGET-B: 15 stock
	s.stocks = []entity.Stock{
		{CompanyID: companyA, ProductID: "WIDGET-A", Quantity: d("30")},
		{CompanyID: companyA, ProductID: "WIDGET-B", Quantity: d("15")},
	}
	s.prodOrders = []entity.ProductionOrder{
		{ID: "po1", CompanyID: companyA, ProductID: "WIDGET-A", Quantity: d("40"), DueDate: date("2026-03-01"), Status: entity.ProductionOrderStatusReleased},
	}
	s.activeBOMs["WIDGET-A"] = true
	return s
}

func newUseCase(s *fakeStore) (*planning.RunPlanUseCase, *fakeAudit) {
	audit := &fakeAudit{}
	return planning.NewRunPlanUseCase(&fakeTxRunner{s}, audit), audit
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRunPlan_GeneraRecomendacionPorFaltante(t *testing.T) {
	s := seedScenario()
	uc, audit := newUseCase(s)

	runID, recs, err := uc.RunPlan(context.Background(), companyA, planID)
	require.NoError(t, err)

	// Solo WIDGET-A tiene faltante: 120 demanda - 70 suministro = 50
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "WIDGET-A", rec.ProductID)
	assert.True(t, rec.Quantity.Equal(d("50")), "cantidad = neto exacto, sin redondeo")
	assert.Equal(t, entity.RecommendationTypeWorkOrder, rec.Type, "con BOM activa se fabrica")
	assert.Equal(t, entity.RecommendationStatusPending, rec.Status)
	require.NotEmpty(t, runID)
	assert.Equal(t, runID, rec.RunID, "la recomendación referencia el run_id de la corrida")

	// El plan termina en completed y las recomendaciones quedan persistidas
	assert.Equal(t, entity.PlanStatusCompleted, s.plans[planID].Status)
	assert.Len(t, s.recs, 1)

	// Auditoría: inicio y fin de corrida
	require.Len(t, audit.calls, 2)
	assert.Equal(t, entity.AuditEventRunStarted, audit.calls[0].EventType)
	assert.Equal(t, entity.AuditEventRunCompleted, audit.calls[1].EventType)
	assert.Equal(t, planID, audit.calls[0].EntityID)
}

func TestRunPlan_SinBOMRecomiendaCompra(t *testing.T) {
	s := seedScenario()
	delete(s.activeBOMs, "WIDGET-A")
	uc, _ := newUseCase(s)

	_, recs, err := uc.RunPlan(context.Background(), companyA, planID)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, entity.RecommendationTypePurchaseOrder, recs[0].Type,
		"sin BOM activa la recomendación es de compra")
}

func TestRunPlan_SinFaltantesNoRecomienda(t *testing.T) {
	s := seedScenario()
	// Subir el stock de WIDGET-A para cubrir toda la demanda
	s.stocks[0].Quantity = d("500")
	uc, _ := newUseCase(s)

	runID, recs, err := uc.RunPlan(context.Background(), companyA, planID)
	require.NoError(t, err)

	assert.Empty(t, recs, "suministro suficiente no genera recomendaciones")
	assert.NotEmpty(t, runID,
		"una corrida sin faltantes también tiene run_id (la auditoría lo referencia)")
	assert.Equal(t, entity.PlanStatusCompleted, s.plans[planID].Status,
		"la corrida vacía también completa el plan")
}

func TestRunPlan_PlanInexistente(t *testing.T) {
	s := seedScenario()
	uc, _ := newUseCase(s)

	_, _, err := uc.RunPlan(context.Background(), companyA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRunPlan_PlanDeOtraEmpresaSeReportaInexistente(t *testing.T) {
	s := seedScenario()
	uc, _ := newUseCase(s)

	_, _, err := uc.RunPlan(context.Background(), companyB, planID)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound,
		"acceso cruzado de empresa no debe filtrar la existencia del plan")
	assert.Equal(t, entity.PlanStatusDraft, s.plans[planID].Status,
		"el intento no debe mutar el plan")
}

func TestRunPlan_CorridaConcurrenteRechazada(t *testing.T) {
	s := seedScenario()
	s.lockDenied = true
	uc, _ := newUseCase(s)

	_, _, err := uc.RunPlan(context.Background(), companyA, planID)
	assert.ErrorIs(t, err, domain.ErrPlanAlreadyRunning)
	assert.Equal(t, entity.PlanStatusDraft, s.plans[planID].Status)
	assert.Empty(t, s.recs)
}

func TestRunPlan_PlanEnRunningRechazado(t *testing.T) {
	s := seedScenario()
	s.plans[planID].Status = entity.PlanStatusRunning
	uc, _ := newUseCase(s)

	_, _, err := uc.RunPlan(context.Background(), companyA, planID)
	assert.ErrorIs(t, err, domain.ErrPlanAlreadyRunning,
		"un plan ya en running no admite otra corrida")
}

func TestRunPlan_HorizonteInvalido(t *testing.T) {
	s := seedScenario()
	s.plans[planID].HorizonStart = date("2026-04-01")
	s.plans[planID].HorizonEnd = date("2026-01-01")
	uc, _ := newUseCase(s)

	_, _, err := uc.RunPlan(context.Background(), companyA, planID)
	assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
}

func TestRunPlan_FalloInternoRevierteTodo(t *testing.T) {
	s := seedScenario()
	s.failRecCreate = errors.New("disco lleno")
	uc, audit := newUseCase(s)

	_, _, err := uc.RunPlan(context.Background(), companyA, planID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionAborted)

	// Rollback: estado previo intacto, ninguna recomendación parcial visible
	assert.Equal(t, entity.PlanStatusDraft, s.plans[planID].Status,
		"el rollback debe restaurar el estado previo del plan")
	assert.Empty(t, s.recs)

	// El evento de inicio se emitió; el de fin no (la corrida no completó)
	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditEventRunStarted, audit.calls[0].EventType)
}

func TestRunPlan_ReejecucionGeneraCorridaIndependiente(t *testing.T) {
	s := seedScenario()
	uc, _ := newUseCase(s)

	firstRun, first, err := uc.RunPlan(context.Background(), companyA, planID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Segunda corrida sobre el plan completado: duplica los registros con otro run_id
	secondRun, second, err := uc.RunPlan(context.Background(), companyA, planID)
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.NotEqual(t, firstRun, secondRun,
		"cada corrida debe tener su propio run_id")
	assert.Equal(t, firstRun, first[0].RunID)
	assert.Equal(t, secondRun, second[0].RunID)
	assert.Len(t, s.recs, 2, "las recomendaciones de corridas sucesivas coexisten")
	assert.Equal(t, entity.PlanStatusCompleted, s.plans[planID].Status)
}

func TestRunPlan_CantidadSiemprePositiva(t *testing.T) {
	s := seedScenario()
	// Demanda fraccionaria pequeña sin suministro
	s.forecasts = append(s.forecasts, entity.Forecast{
		ID: "f4", CompanyID: companyA, ProductID: "RESINA", Quantity: d("0.25"), DueDate: date("2026-02-10"),
	})
	uc, _ := newUseCase(s)

	_, recs, err := uc.RunPlan(context.Background(), companyA, planID)
	require.NoError(t, err)

	for _, rec := range recs {
		assert.True(t, rec.Quantity.GreaterThan(decimal.Zero),
			"toda recomendación debe tener cantidad estrictamente positiva")
	}
}
