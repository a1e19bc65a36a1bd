package negotiations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/negotiation"
)

const negotiationColumns = `id, quotation_id, initiated_by, proposed_amount,
	break_base, break_fuel, break_toll, break_loading, break_unloading, break_other,
	message, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, n entities.Negotiation) (*entities.Negotiation, error) {
	query := `INSERT INTO negotiations
		(quotation_id, initiated_by, proposed_amount,
		 break_base, break_fuel, break_toll, break_loading, break_unloading, break_other, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + negotiationColumns

	base, fuel, toll, loading, unloading, other := FromDomainBreakdown(n.Breakdown)

	var model NegotiationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		n.QuotationID,
		n.InitiatedBy.String(),
		n.ProposedAmount,
		base,
		fuel,
		toll,
		loading,
		unloading,
		other,
		n.Message,
	).Scan(
		&model.ID,
		&model.QuotationID,
		&model.InitiatedBy,
		&model.ProposedAmount,
		&model.BreakBase,
		&model.BreakFuel,
		&model.BreakToll,
		&model.BreakLoading,
		&model.BreakUnloading,
		&model.BreakOther,
		&model.Message,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected negotiations repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Negotiation, error) {
	query := `SELECT ` + negotiationColumns + `
		FROM negotiations
		WHERE id = $1`

	model, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, negotiation.ErrNegotiationNotFound
		}
		return nil, fmt.Errorf("unexpected negotiations repository getbyid error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) GetLatestByQuotationID(ctx context.Context, quotationID int64) (*entities.Negotiation, error) {
	query := `SELECT ` + negotiationColumns + `
		FROM negotiations
		WHERE quotation_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	model, err := r.scanOne(r.querier.QueryRow(ctx, query, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, negotiation.ErrNegotiationNotFound
		}
		return nil, fmt.Errorf("unexpected negotiations repository getlatest error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) ListByQuotationID(ctx context.Context, quotationID int64) ([]entities.Negotiation, error) {
	query := `SELECT ` + negotiationColumns + `
		FROM negotiations
		WHERE quotation_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected negotiations repository listbyquotationid error: %w", err)
	}
	defer rows.Close()

	negotiations := make([]entities.Negotiation, 0, 4)
	for rows.Next() {
		var model NegotiationDB
		err := rows.Scan(
			&model.ID,
			&model.QuotationID,
			&model.InitiatedBy,
			&model.ProposedAmount,
			&model.BreakBase,
			&model.BreakFuel,
			&model.BreakToll,
			&model.BreakLoading,
			&model.BreakUnloading,
			&model.BreakOther,
			&model.Message,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected negotiations repository listbyquotationid error: %w", err)
		}
		negotiations = append(negotiations, *ToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected negotiations repository listbyquotationid error: %w", err)
	}

	return negotiations, nil
}

func (r *Repository) scanOne(row pgx.Row) (*NegotiationDB, error) {
	var model NegotiationDB
	err := row.Scan(
		&model.ID,
		&model.QuotationID,
		&model.InitiatedBy,
		&model.ProposedAmount,
		&model.BreakBase,
		&model.BreakFuel,
		&model.BreakToll,
		&model.BreakLoading,
		&model.BreakUnloading,
		&model.BreakOther,
		&model.Message,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
