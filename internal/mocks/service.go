package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/affordability-engine/internal/domain"
)

type MockAffordabilityService struct {
	mock.Mock
}

func (m *MockAffordabilityService) Calculate(ctx context.Context, in domain.AffordabilityInput) (*domain.Calculation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockAffordabilityService) GetCalculation(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockAffordabilityService) ListCalculations(ctx context.Context, limit int) ([]*domain.CalculationSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalculationSummary), args.Error(1)
}

func (m *MockAffordabilityService) QuoteDuty(ctx context.Context, request domain.DutyQuoteRequest) (*domain.DutyQuoteResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyQuoteResponse), args.Error(1)
}

func (m *MockAffordabilityService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// NewMockAffordabilityService creates a new mock affordability service instance
func NewMockAffordabilityService() *MockAffordabilityService {
	return &MockAffordabilityService{}
}
