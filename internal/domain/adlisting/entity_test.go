//go:build unit

package adlisting_test

import (
	"testing"
	"time"

	"ad-approval-service/internal/domain/adlisting"
	"ad-approval-service/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(adlisting.AdListing{}),
	cmpopts.EquateEmpty(),
}

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRestore(t *testing.T) {
	t.Run("empty status defaults to pending", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().WithStatus("").BuildDomain()
		assert.Equal(t, adlisting.StatusPending, listing.Status())
	})

	t.Run("external status is preserved", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().WithStatus("suspended").BuildDomain()
		assert.Equal(t, adlisting.Status("suspended"), listing.Status())
		assert.False(t, listing.Status().IsKnown())
	})

	t.Run("whitespace is trimmed from correlation fields", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().WithAdUnitID("  ad1 ").WithAdminContact(" a@x.com\n").BuildDomain()
		assert.Equal(t, "ad1", listing.AdUnitID())
		assert.Equal(t, "a@x.com", listing.AdminContact())
	})

	t.Run("same input restores equal listings", func(t *testing.T) {
		b := builder.NewAdListingBuilder().NotifiedAt(now)
		if diff := cmp.Diff(b.BuildDomain(), b.BuildDomain(), cmpOpts...); diff != "" {
			t.Errorf("AdListing mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Summer Sale Banner", builder.NewAdListingBuilder().BuildDomain().Title())
	assert.Equal(t, adlisting.UnknownTitle, builder.NewAdListingBuilder().WithTitle("").BuildDomain().Title())
	assert.Equal(t, adlisting.UnknownTitle, builder.NewAdListingBuilder().WithTitle("   ").BuildDomain().Title())
}

func TestCheckCorrelation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.AdListingBuilder)
		errIs  error
	}{
		{name: "complete listing OK", mutate: func(*builder.AdListingBuilder) {}},
		{name: "missing ad unit id", mutate: func(b *builder.AdListingBuilder) { b.WithAdUnitID("") }, errIs: adlisting.ErrMissingAdUnitID},
		{name: "blank ad unit id", mutate: func(b *builder.AdListingBuilder) { b.WithAdUnitID("  ") }, errIs: adlisting.ErrMissingAdUnitID},
		{name: "missing admin contact", mutate: func(b *builder.AdListingBuilder) { b.WithAdminContact("") }, errIs: adlisting.ErrMissingAdminContact},
		{name: "both missing reports ad unit id first", mutate: func(b *builder.AdListingBuilder) {
			b.WithAdUnitID("").WithAdminContact("")
		}, errIs: adlisting.ErrMissingAdUnitID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := builder.NewAdListingBuilder().With(tt.mutate).BuildDomain().CheckCorrelation()
			if tt.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestReminderDue(t *testing.T) {
	tests := []struct {
		name       string
		notifiedAt *time.Time
		at         time.Time
		want       bool
	}{
		{name: "never notified", notifiedAt: nil, at: now, want: true},
		{name: "notified 1h ago", notifiedAt: ptrTime(now.Add(-time.Hour)), at: now, want: false},
		{name: "notified 1h ago, checked 2h later", notifiedAt: ptrTime(now.Add(-time.Hour)), at: now.Add(2 * time.Hour), want: false},
		{name: "just inside the window", notifiedAt: ptrTime(now.Add(-adlisting.ThrottleWindow + time.Second)), at: now, want: false},
		{name: "exactly at the window", notifiedAt: ptrTime(now.Add(-adlisting.ThrottleWindow)), at: now, want: true},
		{name: "older than the window", notifiedAt: ptrTime(now.Add(-48 * time.Hour)), at: now, want: true},
		{
			name:       "zone-aware timestamps compare as instants",
			notifiedAt: ptrTime(now.Add(-23 * time.Hour).In(time.FixedZone("PST", -8*60*60))),
			at:         now,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewAdListingBuilder()
			if tt.notifiedAt != nil {
				b.NotifiedAt(*tt.notifiedAt)
			}
			assert.Equal(t, tt.want, b.BuildDomain().ReminderDue(tt.at))
		})
	}
}

func TestMarkNotified(t *testing.T) {
	t.Run("sets timestamp in UTC", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().BuildDomain()
		listing.MarkNotified(now.In(time.FixedZone("JST", 9*60*60)))

		require.NotNil(t, listing.LastNotifiedAt())
		assert.Equal(t, now, *listing.LastNotifiedAt())
		assert.False(t, listing.ReminderDue(now.Add(time.Hour)))
	})

	t.Run("never moves backwards", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().NotifiedAt(now).BuildDomain()
		listing.MarkNotified(now.Add(-time.Hour))

		assert.Equal(t, now, *listing.LastNotifiedAt())
	})
}

func TestApprove(t *testing.T) {
	t.Run("pending listing becomes approved and active", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().BuildDomain()

		changed := listing.Approve()

		assert.True(t, changed)
		assert.True(t, listing.IsApproved())
		assert.Equal(t, adlisting.StatusActive, listing.Status())
	})

	t.Run("re-applying is a no-op", func(t *testing.T) {
		listing := builder.NewAdListingBuilder().AsApproved().BuildDomain()
		before := builder.NewAdListingBuilder().AsApproved().BuildDomain()

		changed := listing.Approve()

		assert.False(t, changed)
		assert.Equal(t, before.IsApproved(), listing.IsApproved())
		assert.Equal(t, before.Status(), listing.Status())
	})

	t.Run("approved flag with stale status is repaired", func(t *testing.T) {
		listing := adlisting.Restore(uuid.New(), "ad1", "t", "a@x.com", true, adlisting.StatusPending, nil)

		assert.True(t, listing.Approve())
		assert.Equal(t, adlisting.StatusActive, listing.Status())
	})
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
