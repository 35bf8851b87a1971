package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mrp-api/internal/application/dto"
	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/application/usecase"
	"github.com/jhoicas/Mrp-api/internal/domain"
)

// PlanHandler maneja las peticiones HTTP de planes: CRUD, ejecución de la
// corrida, lectura de recomendaciones, auditoría y reporte PDF (protegido).
type PlanHandler struct {
	uc     *usecase.PlanUseCase
	runner *planning.RunPlanUseCase
	report *planning.PlanReportUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase, runner *planning.RunPlanUseCase, report *planning.PlanReportUseCase) *PlanHandler {
	return &PlanHandler{uc: uc, runner: runner, report: report}
}

// Create godoc
// @Summary      Crear plan de producción
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "name, horizon_start, horizon_end (2006-01-02)"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidHorizon) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_HORIZON", Message: "horizon_start debe ser <= horizon_end"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y fechas 2006-01-02 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar planes
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), companyID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plan por ID
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "plan no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Run godoc
// @Summary      Ejecutar la corrida MRP del plan
// @Description  Agrega demanda y suministro en el horizonte, calcula faltantes
// @Description  y persiste recomendaciones en una sola transacción.
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.RunPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/run [post]
func (h *PlanHandler) Run(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	planID := c.Params("id")
	runID, recs, err := h.runner.RunPlan(c.UserContext(), companyID, planID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlanNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "plan no encontrado"})
		case errors.Is(err, domain.ErrPlanAlreadyRunning):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLAN_ALREADY_RUNNING", Message: "el plan ya tiene una corrida en curso"})
		case errors.Is(err, domain.ErrInvalidHorizon):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_HORIZON", Message: "horizonte del plan inválido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TRANSACTION_ABORTED", Message: "la corrida fue revertida; el plan queda en su estado previo"})
		}
	}
	out := dto.RunPlanResponse{
		Success:         true,
		PlanID:          planID,
		RunID:           runID,
		Recommendations: make([]dto.RecommendationResponse, 0, len(recs)),
	}
	for _, r := range recs {
		out.Recommendations = append(out.Recommendations, usecase.ToRecommendationResponse(r))
	}
	return c.JSON(out)
}

// ListRecommendations godoc
// @Summary      Listar recomendaciones de un plan
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del plan"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.RecommendationListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/recommendations [get]
func (h *PlanHandler) ListRecommendations(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListRecommendations(c.UserContext(), companyID, c.Params("id"), page)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "plan no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAudit godoc
// @Summary      Listar eventos de auditoría de un plan
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del plan"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.AuditEventResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/audit [get]
func (h *PlanHandler) ListAudit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListAudit(c.UserContext(), companyID, c.Params("id"), page)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "plan no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte PDF de la última corrida
// @Tags         plans
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/report.pdf [get]
func (h *PlanHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	pdfBytes, err := h.report.GenerateReport(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "plan no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plan-report.pdf"`)
	return c.Send(pdfBytes)
}

// pageFromQuery lee limit/offset con los topes estándar de listados.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return dto.PageRequest{Limit: limit, Offset: offset}
}
