package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/affordability-engine/internal/domain"
	customError "github.com/segyhp/affordability-engine/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id                 TEXT PRIMARY KEY,
	jurisdiction       TEXT NOT NULL,
	buyer_type         TEXT NOT NULL,
	affordable         BOOLEAN NOT NULL,
	max_property_price BIGINT NOT NULL,
	payload            TEXT NOT NULL,
	created_at         BIGINT NOT NULL
)`

const createdAtIndex = `CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations (created_at)`

// payload is the JSON document stored alongside the indexed columns.
type payload struct {
	Input          domain.AffordabilityInput  `json:"input"`
	Result         domain.AffordabilityResult `json:"result"`
	EquitySchedule []domain.EquityYearPoint   `json:"equity_schedule"`
}

type calculationRow struct {
	ID               string `db:"id"`
	Jurisdiction     string `db:"jurisdiction"`
	BuyerType        string `db:"buyer_type"`
	Affordable       bool   `db:"affordable"`
	MaxPropertyPrice int64  `db:"max_property_price"`
	Payload          string `db:"payload"`
	CreatedAt        int64  `db:"created_at"`
}

type calculationRepository struct {
	db *sqlx.DB
}

// NewCalculationRepository works against either supported driver. Queries are
// written with ? placeholders and rebound for the connection's driver.
func NewCalculationRepository(db *sqlx.DB) CalculationRepository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create calculations table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createdAtIndex); err != nil {
		return fmt.Errorf("create calculations index: %w", err)
	}
	return nil
}

func (r *calculationRepository) Save(ctx context.Context, calc *domain.Calculation) error {
	body, err := json.Marshal(payload{
		Input:          calc.Input,
		Result:         calc.Result,
		EquitySchedule: calc.EquitySchedule,
	})
	if err != nil {
		return fmt.Errorf("encode calculation: %w", err)
	}

	query := r.db.Rebind(`
		INSERT INTO calculations (id, jurisdiction, buyer_type, affordable, max_property_price, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err = r.db.ExecContext(ctx, query,
		calc.ID.String(),
		string(calc.Input.Jurisdiction),
		string(calc.Input.BuyerType),
		calc.Result.Affordable,
		calc.Result.MaxPropertyPrice,
		string(body),
		calc.CreatedAt.UnixMilli(),
	)

	return err
}

func (r *calculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	query := r.db.Rebind(`
		SELECT id, jurisdiction, buyer_type, affordable, max_property_price, payload, created_at
		FROM calculations
		WHERE id = ?
	`)

	var row calculationRow
	err := r.db.GetContext(ctx, &row, query, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.ErrCalculationNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.toCalculation()
}

func (r *calculationRepository) List(ctx context.Context, limit int) ([]*domain.CalculationSummary, error) {
	query := r.db.Rebind(`
		SELECT id, jurisdiction, buyer_type, affordable, max_property_price, created_at
		FROM calculations
		ORDER BY created_at DESC, id
		LIMIT ?
	`)

	var rows []calculationRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, err
	}

	summaries := make([]*domain.CalculationSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := row.toSummary()
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (r *calculationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.Rebind(`DELETE FROM calculations WHERE created_at < ?`)

	res, err := r.db.ExecContext(ctx, query, cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (row calculationRow) toSummary() (*domain.CalculationSummary, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("parse calculation id %q: %w", row.ID, err)
	}

	return &domain.CalculationSummary{
		ID:               id,
		Jurisdiction:     domain.Jurisdiction(row.Jurisdiction),
		BuyerType:        domain.BuyerType(row.BuyerType),
		Affordable:       row.Affordable,
		MaxPropertyPrice: row.MaxPropertyPrice,
		CreatedAt:        time.UnixMilli(row.CreatedAt).UTC(),
	}, nil
}

func (row calculationRow) toCalculation() (*domain.Calculation, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("parse calculation id %q: %w", row.ID, err)
	}

	var p payload
	if err := json.Unmarshal([]byte(row.Payload), &p); err != nil {
		return nil, fmt.Errorf("decode calculation %s: %w", row.ID, err)
	}

	return &domain.Calculation{
		ID:             id,
		Input:          p.Input,
		Result:         p.Result,
		EquitySchedule: p.EquitySchedule,
		CreatedAt:      time.UnixMilli(row.CreatedAt).UTC(),
	}, nil
}
