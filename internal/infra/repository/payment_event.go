package repository

import (
	"context"
	"time"

	"ad-approval-service/internal/domain/payment"
	"ad-approval-service/internal/infra"
	sqlc "ad-approval-service/internal/infra/sqlc/generated"
	"ad-approval-service/internal/pkg/pgconv"
)

type PaymentEventWriteQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
}

type PaymentEventRepository struct {
	queries PaymentEventWriteQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventWriteQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

// Record stores a processed event. It returns false when the provider already
// delivered an event with the same id.
func (r *PaymentEventRepository) Record(ctx context.Context, ev payment.Event, matched int, processedAt time.Time) (bool, error) {
	params := sqlc.InsertPaymentEventParams{
		Provider:        ev.Provider,
		ProviderEventID: ev.ID,
		EventType:       string(ev.Type),
		AdUnitID:        pgconv.StringToPgtype(ev.AdUnitID),
		MatchedCount:    int32(matched),
		ProcessedAt:     pgconv.TimeToPgtype(processedAt),
	}

	affected, err := r.queries.InsertPaymentEvent(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}

	return affected == 1, nil
}
