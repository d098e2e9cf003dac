package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/segyhp/affordability-engine/internal/calculator"
	"github.com/segyhp/affordability-engine/internal/config"
	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/internal/repository"
	customError "github.com/segyhp/affordability-engine/pkg/errors"
)

// History listing bounds
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type AffordabilityService struct {
	CalculationRepo repository.CalculationRepository
	cache           repository.Cache
	engine          *calculator.Engine
	config          *config.Config
	now             func() time.Time
}

func NewAffordabilityService(
	calculationRepo repository.CalculationRepository,
	cache repository.Cache,
	engine *calculator.Engine,
	config *config.Config,
) *AffordabilityService {
	return &AffordabilityService{
		CalculationRepo: calculationRepo,
		cache:           cache,
		engine:          engine,
		config:          config,
		now:             time.Now,
	}
}

// CacheKey identifies an input, and the search settings it was run under,
// by the xxhash of their JSON encoding.
func CacheKey(in domain.AffordabilityInput, search calculator.SearchConfig) (string, error) {
	body, err := json.Marshal(struct {
		Input  domain.AffordabilityInput `json:"input"`
		Search calculator.SearchConfig   `json:"search"`
	}{in, search})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("affordability:%016x", xxhash.Sum64(body)), nil
}

// Calculate finds the maximum affordable price for in, projects equity and
// persists the run. A repeated input is served from cache and not stored again.
func (s *AffordabilityService) Calculate(ctx context.Context, in domain.AffordabilityInput) (*domain.Calculation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key, err := CacheKey(in, s.engine.Config())
	if err != nil {
		return nil, customError.WrapCacheError(err)
	}

	if calc, ok := s.cached(ctx, key); ok {
		return calc, nil
	}

	calc, err := s.Project(in)
	if err != nil {
		return nil, err
	}

	if err := s.CalculationRepo.Save(ctx, calc); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.store(ctx, key, calc)

	return calc, nil
}

// Project runs the search and equity projection for in without touching the
// repository or cache.
func (s *AffordabilityService) Project(in domain.AffordabilityInput) (*domain.Calculation, error) {
	result, err := s.engine.FindMaxAffordable(in)
	if err != nil {
		return nil, err
	}

	schedule := []domain.EquityYearPoint{}
	if result.Affordable {
		schedule = calculator.BuildEquitySchedule(calculator.EquityParams{
			PropertyPrice:       result.MaxPropertyPrice,
			InitialLoanBalance:  result.MortgageBalance(),
			AnnualRatePercent:   in.AnnualInterestRatePercent,
			TermYears:           in.RepaymentPeriodYears,
			MonthlyPayment:      result.MonthlyRepayment,
			AppreciationPercent: in.PropertyAppreciationPercent,
			RepaymentType:       in.RepaymentType,
		})
	}

	return &domain.Calculation{
		ID:             uuid.New(),
		Input:          in,
		Result:         result,
		EquitySchedule: schedule,
		CreatedAt:      s.now().UTC(),
	}, nil
}

func (s *AffordabilityService) cached(ctx context.Context, key string) (*domain.Calculation, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("Cache read failed for %s: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var calc domain.Calculation
	if err := json.Unmarshal([]byte(raw), &calc); err != nil {
		log.Printf("Discarding unreadable cache entry %s: %v", key, err)
		return nil, false
	}
	return &calc, true
}

func (s *AffordabilityService) store(ctx context.Context, key string, calc *domain.Calculation) {
	if s.cache == nil {
		return
	}

	body, err := json.Marshal(calc)
	if err != nil {
		log.Printf("Failed to encode calculation %s for cache: %v", calc.ID, err)
		return
	}
	if err := s.cache.Set(ctx, key, string(body), s.config.GetCacheTTL()); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

// GetCalculation retrieves a stored calculation by its ID
func (s *AffordabilityService) GetCalculation(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	id, err := uuid.Parse(calculationID)
	if err != nil {
		return nil, customError.WrapValidationError("calculation_id", "must be a valid UUID")
	}

	calc, err := s.CalculationRepo.GetByID(ctx, id)
	if errors.Is(err, customError.ErrCalculationNotFound) {
		return nil, customError.WrapCalculationNotFound(calculationID)
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return calc, nil
}

// ListCalculations returns the most recent calculations. A non-positive limit
// uses the default; larger limits are capped.
func (s *AffordabilityService) ListCalculations(ctx context.Context, limit int) ([]*domain.CalculationSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	summaries, err := s.CalculationRepo.List(ctx, limit)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return summaries, nil
}

// QuoteDuty prices transfer duty for a single purchase
func (s *AffordabilityService) QuoteDuty(ctx context.Context, request domain.DutyQuoteRequest) (*domain.DutyQuoteResponse, error) {
	if err := domain.Validate(request); err != nil {
		return nil, err
	}

	return &domain.DutyQuoteResponse{
		PropertyPrice: request.PropertyPrice,
		Jurisdiction:  request.Jurisdiction,
		BuyerType:     request.BuyerType,
		DutyResult:    calculator.ComputeDuty(request.PropertyPrice, request.Jurisdiction, request.BuyerType),
	}, nil
}

// PurgeExpired deletes calculations older than the retention window
func (s *AffordabilityService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.config.GetRetention())

	deleted, err := s.CalculationRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	log.Printf("Purged %d calculations created before %s", deleted, cutoff.Format(time.RFC3339))
	return deleted, nil
}
