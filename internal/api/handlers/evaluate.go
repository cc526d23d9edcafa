package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// Evaluator defines the interface for running a catalog evaluation.
type Evaluator interface {
	EvaluateAll(ctx context.Context) (int, error)
	State(ctx context.Context) (*domain.CatalogState, error)
}

// EvaluateHandler handles evaluation trigger and catalog state requests.
type EvaluateHandler struct {
	evaluator Evaluator
}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler(e Evaluator) *EvaluateHandler {
	return &EvaluateHandler{evaluator: e}
}

// EvaluateOutput is the response body for the evaluate endpoint.
type EvaluateOutput struct {
	Body struct {
		AlertsSent int `json:"alerts_sent" example:"2" doc:"Number of alerts delivered in this run"`
	}
}

// Evaluate runs a full catalog evaluation pass.
func (h *EvaluateHandler) Evaluate(ctx context.Context, _ *struct{}) (*EvaluateOutput, error) {
	sent, err := h.evaluator.EvaluateAll(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("evaluation failed: " + err.Error())
	}

	resp := &EvaluateOutput{}
	resp.Body.AlertsSent = sent
	return resp, nil
}

// StateOutput is the response body for the state endpoint.
type StateOutput struct {
	Body struct {
		ItemsTotal int `json:"items_total" example:"12" doc:"Number of tracked items in the catalog"`
	}
}

// State reports a catalog summary.
func (h *EvaluateHandler) State(ctx context.Context, _ *struct{}) (*StateOutput, error) {
	state, err := h.evaluator.State(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("reading catalog state: " + err.Error())
	}

	resp := &StateOutput{}
	resp.Body.ItemsTotal = state.ItemsTotal
	return resp, nil
}

// RegisterEvaluateRoutes registers evaluation endpoints with the Huma API.
func RegisterEvaluateRoutes(api huma.API, h *EvaluateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-evaluate",
		Method:      http.MethodPost,
		Path:        "/api/v1/evaluate",
		Summary:     "Evaluate all tracked items",
		Description: "Fetches fresh state for every tracked item, fires due alerts, and persists transition state.",
		Tags:        []string{"evaluation"},
	}, h.Evaluate)

	huma.Register(api, huma.Operation{
		OperationID: "get-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/state",
		Summary:     "Get catalog state",
		Description: "Returns a summary of the tracking catalog.",
		Tags:        []string{"evaluation"},
	}, h.State)
}
