package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/internal/report"
	"github.com/segyhp/affordability-engine/pkg/response"
)

// AffordabilityService is the behaviour the HTTP layer needs from the service
type AffordabilityService interface {
	Calculate(ctx context.Context, in domain.AffordabilityInput) (*domain.Calculation, error)
	GetCalculation(ctx context.Context, calculationID string) (*domain.Calculation, error)
	ListCalculations(ctx context.Context, limit int) ([]*domain.CalculationSummary, error)
	QuoteDuty(ctx context.Context, request domain.DutyQuoteRequest) (*domain.DutyQuoteResponse, error)
}

type AffordabilityHandler struct {
	service   AffordabilityService
	validator *validator.Validate
}

func NewAffordabilityHandler(service AffordabilityService) *AffordabilityHandler {
	return &AffordabilityHandler{
		service:   service,
		validator: domain.NewValidator(),
	}
}

// CalculationResponse is a stored calculation plus its display report
type CalculationResponse struct {
	*domain.Calculation
	Report report.Report `json:"report"`
}

func newCalculationResponse(calc *domain.Calculation) CalculationResponse {
	return CalculationResponse{
		Calculation: calc,
		Report:      report.Build(calc.Input, calc.Result, calc.EquitySchedule),
	}
}

// Calculate handles POST /api/v1/affordability
func (h *AffordabilityHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var in domain.AffordabilityInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(in); err != nil {
		response.FromError(w, domain.TranslateValidation(err))
		return
	}

	calc, err := h.service.Calculate(r.Context(), in)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, newCalculationResponse(calc))
}

// GetCalculation handles GET /api/v1/affordability/{calculationId}
func (h *AffordabilityHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	calculationID := mux.Vars(r)["calculationId"]

	calc, err := h.service.GetCalculation(r.Context(), calculationID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, newCalculationResponse(calc))
}

// ListCalculations handles GET /api/v1/affordability?limit=N
func (h *AffordabilityHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "limit must be an integer", err)
			return
		}
		limit = parsed
	}

	summaries, err := h.service.ListCalculations(r.Context(), limit)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, domain.ListCalculationsResponse{Calculations: summaries})
}

// QuoteDuty handles GET /api/v1/duty?price=&jurisdiction=&buyer_type=
func (h *AffordabilityHandler) QuoteDuty(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	price, err := strconv.ParseInt(query.Get("price"), 10, 64)
	if err != nil {
		response.BadRequest(w, "price must be a whole number", err)
		return
	}

	quote, err := h.service.QuoteDuty(r.Context(), domain.DutyQuoteRequest{
		PropertyPrice: price,
		Jurisdiction:  domain.Jurisdiction(query.Get("jurisdiction")),
		BuyerType:     domain.BuyerType(query.Get("buyer_type")),
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, quote)
}
