//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"ad-approval-service/internal/domain/adlisting"
	"ad-approval-service/internal/infra"
	sqlc "ad-approval-service/internal/infra/sqlc/generated"
	"ad-approval-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdListingQueries struct {
	mock.Mock
}

func (m *MockAdListingQueries) ListUnapprovedAds(ctx context.Context, db sqlc.DBTX) ([]sqlc.CustomAds, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.CustomAds), args.Error(1)
}

func (m *MockAdListingQueries) ListAdsByAdUnitID(ctx context.Context, db sqlc.DBTX, adUnitID pgtype.Text) ([]sqlc.CustomAds, error) {
	args := m.Called(ctx, db, adUnitID)
	return args.Get(0).([]sqlc.CustomAds), args.Error(1)
}

func (m *MockAdListingQueries) UpdateAdLastEmailSent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAdLastEmailSentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdListingQueries) ApproveAd(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestFindUnapproved(t *testing.T) {
	notifiedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	fresh := builder.NewAdListingBuilder().BuildInfra()
	reminded := builder.NewAdListingBuilder().WithAdUnitID("ad2").NotifiedAt(notifiedAt).BuildInfra()
	incomplete := builder.NewAdListingBuilder().WithAdUnitID("").WithTitle("").BuildInfra()

	t.Run("maps rows to listings", func(t *testing.T) {
		mockQueries := new(MockAdListingQueries)
		mockQueries.On("ListUnapprovedAds", mock.Anything, mock.Anything).
			Return([]sqlc.CustomAds{fresh, reminded, incomplete}, nil)

		repo := NewAdListingRepository(mockQueries, nil)

		listings, err := repo.FindUnapproved(context.Background())
		require.NoError(t, err)
		require.Len(t, listings, 3)

		assert.Equal(t, fresh.ID, listings[0].ID())
		assert.Equal(t, "ad1", listings[0].AdUnitID())
		assert.Equal(t, "a@x.com", listings[0].AdminContact())
		assert.Equal(t, adlisting.StatusPending, listings[0].Status())
		assert.Nil(t, listings[0].LastNotifiedAt())

		require.NotNil(t, listings[1].LastNotifiedAt())
		assert.True(t, notifiedAt.Equal(*listings[1].LastNotifiedAt()))
		assert.Equal(t, time.UTC, listings[1].LastNotifiedAt().Location())

		assert.ErrorIs(t, listings[2].CheckCorrelation(), adlisting.ErrMissingAdUnitID)
		assert.Equal(t, adlisting.UnknownTitle, listings[2].Title())

		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockAdListingQueries)
		mockQueries.On("ListUnapprovedAds", mock.Anything, mock.Anything).
			Return([]sqlc.CustomAds(nil), assert.AnError)

		repo := NewAdListingRepository(mockQueries, nil)

		listings, err := repo.FindUnapproved(context.Background())
		assert.Nil(t, listings)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertExpectations(t)
	})
}

func TestFindByAdUnitID(t *testing.T) {
	first := builder.NewAdListingBuilder().BuildInfra()
	second := builder.NewAdListingBuilder().AsApproved().BuildInfra()

	tests := []struct {
		name      string
		rows      []sqlc.CustomAds
		mockError error
		wantLen   int
		wantError bool
	}{
		{name: "no match", rows: nil, wantLen: 0},
		{name: "single match", rows: []sqlc.CustomAds{first}, wantLen: 1},
		{name: "several listings share the ad unit id", rows: []sqlc.CustomAds{first, second}, wantLen: 2},
		{name: "database error", rows: nil, mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockAdListingQueries)
			mockQueries.On("ListAdsByAdUnitID", mock.Anything, mock.Anything, pgtype.Text{String: "ad1", Valid: true}).
				Return(tt.rows, tt.mockError)

			repo := NewAdListingRepository(mockQueries, nil)

			listings, err := repo.FindByAdUnitID(context.Background(), "ad1")

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Len(t, listings, tt.wantLen)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpdateLastNotified(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expected := sqlc.UpdateAdLastEmailSentParams{
		ID:            id,
		LastEmailSent: pgtype.Timestamptz{Time: at, Valid: true},
	}

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantError bool
	}{
		{name: "success", affected: 1},
		{name: "newer timestamp already stored", affected: 0},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockAdListingQueries)
			mockQueries.On("UpdateAdLastEmailSent", mock.Anything, mock.Anything, expected).
				Return(tt.affected, tt.mockError)

			repo := NewAdListingRepository(mockQueries, nil)

			err := repo.UpdateLastNotified(context.Background(), id, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestMarkApproved(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "listing deleted meanwhile", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockAdListingQueries)
			mockQueries.On("ApproveAd", mock.Anything, mock.Anything, id).Return(tt.affected, tt.mockError)

			repo := NewAdListingRepository(mockQueries, nil)

			err := repo.MarkApproved(context.Background(), id)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
