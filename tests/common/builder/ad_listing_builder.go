//go:build unit || e2e

package builder

import (
	"time"

	"ad-approval-service/internal/domain/adlisting"
	sqlc "ad-approval-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdListingBuilder struct {
	ID             uuid.UUID
	AdUnitID       string
	Title          string
	AdminContact   string
	Approved       bool
	Status         string
	LastNotifiedAt *time.Time
}

func NewAdListingBuilder() *AdListingBuilder {
	return &AdListingBuilder{
		ID:           uuid.New(),
		AdUnitID:     "ad1",
		Title:        "Summer Sale Banner",
		AdminContact: "a@x.com",
		Approved:     false,
		Status:       string(adlisting.StatusPending),
	}
}

func (b *AdListingBuilder) With(mutate func(*AdListingBuilder)) *AdListingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AdListingBuilder) BuildDomain() *adlisting.AdListing {
	return adlisting.Restore(
		b.ID,
		b.AdUnitID,
		b.Title,
		b.AdminContact,
		b.Approved,
		adlisting.Status(b.Status),
		b.LastNotifiedAt,
	)
}

func (b *AdListingBuilder) BuildInfra() sqlc.CustomAds {
	now := time.Now()
	row := sqlc.CustomAds{
		ID:         b.ID,
		Title:      b.Title,
		IsApproved: b.Approved,
		Status:     b.Status,
		CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
	}
	if b.AdUnitID != "" {
		row.AdUnitID = pgtype.Text{String: b.AdUnitID, Valid: true}
	}
	if b.AdminContact != "" {
		row.AdAdmin = pgtype.Text{String: b.AdminContact, Valid: true}
	}
	if b.LastNotifiedAt != nil {
		row.LastEmailSent = pgtype.Timestamptz{Time: *b.LastNotifiedAt, Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *AdListingBuilder) WithAdUnitID(id string) *AdListingBuilder {
	b.AdUnitID = id
	return b
}

func (b *AdListingBuilder) WithTitle(title string) *AdListingBuilder {
	b.Title = title
	return b
}

func (b *AdListingBuilder) WithAdminContact(contact string) *AdListingBuilder {
	b.AdminContact = contact
	return b
}

func (b *AdListingBuilder) WithStatus(status string) *AdListingBuilder {
	b.Status = status
	return b
}

func (b *AdListingBuilder) NotifiedAt(t time.Time) *AdListingBuilder {
	b.LastNotifiedAt = &t
	return b
}

func (b *AdListingBuilder) AsApproved() *AdListingBuilder {
	b.Approved = true
	b.Status = string(adlisting.StatusActive)
	return b
}
