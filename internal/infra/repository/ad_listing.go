package repository

import (
	"context"
	"time"

	"ad-approval-service/internal/domain/adlisting"
	"ad-approval-service/internal/infra"
	sqlc "ad-approval-service/internal/infra/sqlc/generated"
	"ad-approval-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdListingQueries interface {
	ListUnapprovedAds(ctx context.Context, db sqlc.DBTX) ([]sqlc.CustomAds, error)
	ListAdsByAdUnitID(ctx context.Context, db sqlc.DBTX, adUnitID pgtype.Text) ([]sqlc.CustomAds, error)
	UpdateAdLastEmailSent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAdLastEmailSentParams) (int64, error)
	ApproveAd(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type AdListingRepository struct {
	queries AdListingQueries
	db      sqlc.DBTX
}

func NewAdListingRepository(queries AdListingQueries, db sqlc.DBTX) *AdListingRepository {
	return &AdListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdListingRepository) FindUnapproved(ctx context.Context) ([]*adlisting.AdListing, error) {
	rows, err := r.queries.ListUnapprovedAds(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unapproved ads", err)
	}
	return toAdListings(rows), nil
}

func (r *AdListingRepository) FindByAdUnitID(ctx context.Context, adUnitID string) ([]*adlisting.AdListing, error) {
	rows, err := r.queries.ListAdsByAdUnitID(ctx, r.db, pgconv.StringToPgtype(adUnitID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ads by ad unit id", err)
	}
	return toAdListings(rows), nil
}

// UpdateLastNotified stamps the reminder time. A stored value later than at is left in place.
func (r *AdListingRepository) UpdateLastNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.queries.UpdateAdLastEmailSent(ctx, r.db, sqlc.UpdateAdLastEmailSentParams{
		ID:            id,
		LastEmailSent: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update last email sent", err)
	}
	return nil
}

func (r *AdListingRepository) MarkApproved(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.ApproveAd(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to approve ad", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("ad not found", nil, infra.KindNotFound)
	}
	return nil
}

func toAdListings(rows []sqlc.CustomAds) []*adlisting.AdListing {
	result := make([]*adlisting.AdListing, len(rows))
	for i, row := range rows {
		result[i] = toAdListing(row)
	}
	return result
}

func toAdListing(row sqlc.CustomAds) *adlisting.AdListing {
	return adlisting.Restore(
		row.ID,
		pgconv.StringFromPgtype(row.AdUnitID),
		row.Title,
		pgconv.StringFromPgtype(row.AdAdmin),
		row.IsApproved,
		adlisting.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.LastEmailSent),
	)
}
