package response

import (
	"ad-approval-service/internal/usecase/queries"
)

type AdListingResponse struct {
	ID             string `json:"id"`
	AdUnitID       string `json:"ad_unit_id"`
	Title          string `json:"title"`
	AdminContact   string `json:"admin_contact"`
	IsApproved     bool   `json:"is_approved"`
	Status         string `json:"status"`
	LastNotifiedAt *int64 `json:"last_notified_at,omitempty"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

func FromAdListingView(v *queries.AdListingView) *AdListingResponse {
	res := &AdListingResponse{
		ID:           v.ID.String(),
		AdUnitID:     v.AdUnitID,
		Title:        v.Title,
		AdminContact: v.AdminContact,
		IsApproved:   v.IsApproved,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
	if v.LastNotifiedAt != nil {
		ts := v.LastNotifiedAt.Unix()
		res.LastNotifiedAt = &ts
	}
	return res
}
