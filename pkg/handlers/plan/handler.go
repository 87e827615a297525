package plan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/payplan-tools/payplan/pkg/adapters"
	"github.com/payplan-tools/payplan/pkg/models/api"
	"github.com/payplan-tools/payplan/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Builder runs the payment-plan pipeline for one request.
type Builder interface {
	BuildPlan(ctx context.Context, items []domain.Installment, cfg domain.PlanConfig) (*domain.PlanResult, error)
}

type Handler struct {
	planner Builder
}

func NewHandler(planner Builder) *Handler {
	return &Handler{planner: planner}
}

// CreatePlan handles POST /api/v1/plan.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, r, api.Problem{
			Type:   "https://payplan.dev/problems/malformed-request",
			Title:  "Malformed request body",
			Status: http.StatusBadRequest,
			Detail: "request body is not valid JSON",
		})
		return
	}

	items, cfg := adapters.MapPlanRequestToDomain(req)

	result, err := h.planner.BuildPlan(ctx, items, cfg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapPlanResultDomainToApi(result)); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode plan response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeProblem(w, r, api.Problem{
			Type:   "https://payplan.dev/problems/validation",
			Title:  "Invalid request",
			Status: http.StatusBadRequest,
			Detail: validationErr.Error(),
		})
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		writeProblem(w, r, api.Problem{
			Type:   "https://payplan.dev/problems/configuration",
			Title:  "Invalid configuration",
			Status: http.StatusBadRequest,
			Detail: configErr.Error(),
		})
		return
	}

	// Internal faults surface generically; details stay in the log.
	logger.Error().
		Err(err).
		Msg("plan pipeline failed")
	writeProblem(w, r, api.Problem{
		Type:   "https://payplan.dev/problems/internal",
		Title:  "Internal error",
		Status: http.StatusInternalServerError,
		Detail: "an internal error occurred while building the plan",
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, problem api.Problem) {
	problem.Instance = r.URL.Path
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	_ = json.NewEncoder(w).Encode(problem)
}
