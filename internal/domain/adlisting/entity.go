package adlisting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdListing is a third-party ad waiting for, or holding, display approval.
// Approved and status only ever change together through Approve.
type AdListing struct {
	id             uuid.UUID
	adUnitID       string
	title          string
	adminContact   string
	approved       bool
	status         Status
	lastNotifiedAt *time.Time
}

// Restore rebuilds a listing from stored state. Fields are taken as-is because
// listings are created by another system; CheckCorrelation reports the gaps.
func Restore(id uuid.UUID, adUnitID, title, adminContact string, approved bool, status Status, lastNotifiedAt *time.Time) *AdListing {
	if status == "" {
		status = StatusPending
	}
	var notified *time.Time
	if lastNotifiedAt != nil {
		t := lastNotifiedAt.UTC()
		notified = &t
	}
	return &AdListing{
		id:             id,
		adUnitID:       strings.TrimSpace(adUnitID),
		title:          title,
		adminContact:   strings.TrimSpace(adminContact),
		approved:       approved,
		status:         status,
		lastNotifiedAt: notified,
	}
}

func (a *AdListing) ID() uuid.UUID              { return a.id }
func (a *AdListing) AdUnitID() string           { return a.adUnitID }
func (a *AdListing) AdminContact() string       { return a.adminContact }
func (a *AdListing) IsApproved() bool           { return a.approved }
func (a *AdListing) Status() Status             { return a.status }
func (a *AdListing) LastNotifiedAt() *time.Time { return a.lastNotifiedAt }

func (a *AdListing) Title() string {
	if strings.TrimSpace(a.title) == "" {
		return UnknownTitle
	}
	return a.title
}

// CheckCorrelation returns an error when the listing cannot be tied back to a payment.
func (a *AdListing) CheckCorrelation() error {
	if a.adUnitID == "" {
		return ErrMissingAdUnitID
	}
	if a.adminContact == "" {
		return ErrMissingAdminContact
	}
	return nil
}

// ReminderDue applies the throttle window. Both sides are compared in UTC.
func (a *AdListing) ReminderDue(now time.Time) bool {
	if a.lastNotifiedAt == nil {
		return true
	}
	return now.UTC().Sub(*a.lastNotifiedAt) >= ThrottleWindow
}

// MarkNotified records a reminder at now. The timestamp never moves backwards.
func (a *AdListing) MarkNotified(now time.Time) {
	now = now.UTC()
	if a.lastNotifiedAt != nil && now.Before(*a.lastNotifiedAt) {
		return
	}
	a.lastNotifiedAt = &now
}

// Approve activates the listing and reports whether anything changed.
func (a *AdListing) Approve() bool {
	if a.approved && a.status == StatusActive {
		return false
	}
	a.approved = true
	a.status = StatusActive
	return true
}
