package repository

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// RecommendationRepository define el puerto de persistencia para Recommendation.
// El motor solo crea; nunca actualiza después de la corrida.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *entity.Recommendation) error
	// ListByPlan pagina las recomendaciones de un plan y devuelve el total.
	ListByPlan(ctx context.Context, companyID, planID string, limit, offset int) ([]*entity.Recommendation, int, error)
	// ListLatestRun devuelve las recomendaciones de la última corrida del plan.
	ListLatestRun(ctx context.Context, companyID, planID string) ([]entity.Recommendation, error)
}
