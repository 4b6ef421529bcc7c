package readstore

import (
	"context"

	"ad-approval-service/internal/infra"
	sqlc "ad-approval-service/internal/infra/sqlc/generated"
	"ad-approval-service/internal/pkg/pgconv"
	"ad-approval-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdListingReadQueries interface {
	GetAd(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CustomAds, error)
}

type AdListingReadStore struct {
	queries AdListingReadQueries
	db      sqlc.DBTX
}

func NewAdListingReadStore(queries AdListingReadQueries, db sqlc.DBTX) *AdListingReadStore {
	return &AdListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *AdListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdListingView, error) {
	row, err := s.queries.GetAd(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ad not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ad", err)
	}
	return toAdListingView(row), nil
}

func toAdListingView(row sqlc.CustomAds) *queries.AdListingView {
	return &queries.AdListingView{
		ID:             row.ID,
		AdUnitID:       pgconv.StringFromPgtype(row.AdUnitID),
		Title:          row.Title,
		AdminContact:   pgconv.StringFromPgtype(row.AdAdmin),
		IsApproved:     row.IsApproved,
		Status:         row.Status,
		LastNotifiedAt: pgconv.TimePtrFromPgtype(row.LastEmailSent),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
