package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation is a persisted affordability run.
type Calculation struct {
	ID             uuid.UUID           `json:"id"`
	Input          AffordabilityInput  `json:"input"`
	Result         AffordabilityResult `json:"result"`
	EquitySchedule []EquityYearPoint   `json:"equity_schedule"`
	CreatedAt      time.Time           `json:"created_at"`
}

// CalculationSummary is a history listing row.
type CalculationSummary struct {
	ID               uuid.UUID    `json:"id"`
	Jurisdiction     Jurisdiction `json:"jurisdiction"`
	BuyerType        BuyerType    `json:"buyer_type"`
	Affordable       bool         `json:"affordable"`
	MaxPropertyPrice int64        `json:"max_property_price"`
	CreatedAt        time.Time    `json:"created_at"`
}

// DTOs for requests and responses

type DutyQuoteRequest struct {
	PropertyPrice int64        `json:"price" validate:"gt=0"`
	Jurisdiction  Jurisdiction `json:"jurisdiction" validate:"required,oneof=NSW VIC QLD WA SA TAS ACT NT"`
	BuyerType     BuyerType    `json:"buyer_type" validate:"required,oneof=first-home owner-occupier investor foreign"`
}

type DutyQuoteResponse struct {
	PropertyPrice int64        `json:"price"`
	Jurisdiction  Jurisdiction `json:"jurisdiction"`
	BuyerType     BuyerType    `json:"buyer_type"`
	DutyResult
}

type ListCalculationsResponse struct {
	Calculations []*CalculationSummary `json:"calculations"`
}
