package planning

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	domplanning "github.com/jhoicas/Mrp-api/internal/domain/planning"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// RunPlanUseCase coordina una corrida de planificación MRP: carga el horizonte,
// agrega demanda y suministro, calcula faltantes, clasifica fabricar-vs-comprar
// y persiste las recomendaciones. Todo dentro de una sola transacción con
// Commit/Rollback: ante cualquier error el plan queda en su estado previo y
// ninguna recomendación parcial es visible.
type RunPlanUseCase struct {
	txRunner TxRunner
	audit    AuditRecorder
}

// NewRunPlanUseCase construye el caso de uso.
func NewRunPlanUseCase(txRunner TxRunner, audit AuditRecorder) *RunPlanUseCase {
	return &RunPlanUseCase{txRunner: txRunner, audit: audit}
}

// runAuditPayload payload de los eventos de auditoría de una corrida.
type runAuditPayload struct {
	RunID           string `json:"run_id"`
	Recommendations int    `json:"recommendations,omitempty"`
}

// RunPlan ejecuta la corrida del plan y devuelve su run_id junto con las
// recomendaciones generadas; una corrida sin faltantes también tiene run_id
// (los eventos de auditoría lo referencian). Errores: ErrPlanNotFound (plan
// inexistente o de otra empresa), ErrPlanAlreadyRunning (corrida concurrente
// rechazada por el lock/transición de estado), ErrTransactionAborted (cualquier
// fallo interno; la transacción se revierte completa). No hay reintentos: el
// caller puede reenviar RunPlan con seguridad porque un intento fallido no
// deja efectos.
func (uc *RunPlanUseCase) RunPlan(ctx context.Context, companyID, planID string) (string, []entity.Recommendation, error) {
	now := time.Now()
	runID := uuid.New().String()

	uc.audit.Record(ctx, companyID, entity.AuditEventRunStarted, planID, runAuditPayload{RunID: runID})

	var recs []entity.Recommendation
	err := uc.txRunner.RunPlanning(ctx, func(
		planRepo repository.PlanRepository,
		forecastRepo repository.ForecastRepository,
		salesOrderRepo repository.SalesOrderRepository,
		stockRepo repository.StockRepository,
		productionOrderRepo repository.ProductionOrderRepository,
		bomRepo repository.BOMRepository,
		recRepo repository.RecommendationRepository,
	) error {
		// Exclusión entre corridas concurrentes del mismo plan: advisory lock
		// ligado a la transacción. El segundo caller recibe 409, no duplica.
		locked, err := planRepo.AcquireRunLock(ctx, planID)
		if err != nil {
			return err
		}
		if !locked {
			return domain.ErrPlanAlreadyRunning
		}

		plan, err := planRepo.GetByID(ctx, planID)
		if err != nil {
			return err
		}
		// Un plan de otra empresa se reporta como inexistente para no filtrar información.
		if plan == nil || plan.CompanyID != companyID {
			return domain.ErrPlanNotFound
		}
		if !plan.ValidHorizon() {
			return domain.ErrInvalidHorizon
		}

		// Transición condicional draft/completed -> running. El rollback la
		// deshace, así que un fallo posterior deja el estado previo intacto.
		moved, err := planRepo.TransitionStatus(ctx, planID,
			[]string{entity.PlanStatusDraft, entity.PlanStatusCompleted}, entity.PlanStatusRunning)
		if err != nil {
			return err
		}
		if !moved {
			return domain.ErrPlanAlreadyRunning
		}

		// Resolución del horizonte: demanda y suministro con fecha en
		// [horizon_start, horizon_end]. Carga completa o nada (fail fast).
		forecasts, err := forecastRepo.ListInHorizon(ctx, companyID, plan.HorizonStart, plan.HorizonEnd)
		if err != nil {
			return err
		}
		salesOrders, err := salesOrderRepo.ListConfirmedInHorizon(ctx, companyID, plan.HorizonStart, plan.HorizonEnd)
		if err != nil {
			return err
		}
		stocks, err := stockRepo.ListByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		prodOrders, err := productionOrderRepo.ListOpenInHorizon(ctx, companyID,
			plan.HorizonStart, plan.HorizonEnd, entity.OpenProductionOrderStatuses)
		if err != nil {
			return err
		}

		demand := domplanning.AggregateDemand(forecasts, salesOrders)
		supply := domplanning.AggregateSupply(stocks, prodOrders)
		shortages := domplanning.Shortages(domplanning.NetRequirements(demand, supply))

		// Orden estable de inserción para lecturas reproducibles.
		productIDs := make([]string, 0, len(shortages))
		for productID := range shortages {
			productIDs = append(productIDs, productID)
		}
		sort.Strings(productIDs)

		withBOM, err := bomRepo.ListActiveProductIDs(ctx, companyID, productIDs)
		if err != nil {
			return err
		}
		hasBOM := make(map[string]bool, len(withBOM))
		for _, productID := range withBOM {
			hasBOM[productID] = true
		}

		// Una recomendación por producto con faltante; cantidad = neto (> 0),
		// fecha sugerida = momento de la corrida (sin offset por lead time).
		for _, productID := range productIDs {
			rec := entity.Recommendation{
				ID:            uuid.New().String(),
				PlanID:        plan.ID,
				RunID:         runID,
				CompanyID:     companyID,
				ProductID:     productID,
				Type:          domplanning.Classify(hasBOM[productID]),
				Quantity:      shortages[productID],
				SuggestedDate: now,
				Status:        entity.RecommendationStatusPending,
				CreatedAt:     now,
			}
			if err := recRepo.Create(ctx, &rec); err != nil {
				return err
			}
			recs = append(recs, rec)
		}

		moved, err = planRepo.TransitionStatus(ctx, planID,
			[]string{entity.PlanStatusRunning}, entity.PlanStatusCompleted)
		if err != nil {
			return err
		}
		if !moved {
			return domain.ErrConflict
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) ||
			errors.Is(err, domain.ErrPlanAlreadyRunning) ||
			errors.Is(err, domain.ErrInvalidHorizon) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("%w: %v", domain.ErrTransactionAborted, err)
	}

	uc.audit.Record(ctx, companyID, entity.AuditEventRunCompleted, planID,
		runAuditPayload{RunID: runID, Recommendations: len(recs)})

	return runID, recs, nil
}
