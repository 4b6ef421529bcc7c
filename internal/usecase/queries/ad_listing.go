package queries

import (
	"context"
	"time"

	"ad-approval-service/internal/infra"
	"ad-approval-service/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ad_listing.go -destination=../../../tests/mock/queries/mock_ad_listing.go -package=queriesmock

var ErrAdListingNotFound = errs.New("ad listing not found")

// AdListingView is the approval state of one listing as operators see it.
type AdListingView struct {
	ID             uuid.UUID  `json:"id"`
	AdUnitID       string     `json:"ad_unit_id"`
	Title          string     `json:"title"`
	AdminContact   string     `json:"admin_contact"`
	IsApproved     bool       `json:"is_approved"`
	Status         string     `json:"status"`
	LastNotifiedAt *time.Time `json:"last_notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AdListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdListingView, error)
}

type AdListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AdListingView, error)
}

type adListingQueriesImpl struct {
	readStore AdListingReadStore
}

func NewAdListingQueries(readStore AdListingReadStore) AdListingQueries {
	return &adListingQueriesImpl{
		readStore: readStore,
	}
}

func (q *adListingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AdListingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdListingNotFound
		}
		return nil, err
	}
	return view, nil
}
