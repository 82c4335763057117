package domain

import "time"

// VillaStatus is the lifecycle status of a listing.
// The remote store does not enforce the enumeration, so inputs are
// validated before dispatch (see validate.go).
type VillaStatus string

const (
	StatusAvailable   VillaStatus = "Available"
	StatusRented      VillaStatus = "Rented"
	StatusMaintenance VillaStatus = "Maintenance"
)

// Statuses lists every valid VillaStatus, in display order.
func Statuses() []VillaStatus {
	return []VillaStatus{StatusAvailable, StatusRented, StatusMaintenance}
}

func (s VillaStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return true
	}
	return false
}

// Villa is one rental property listing as stored in the remote
// "villas" table. ID and CreatedAt are assigned by the store on insert.
type Villa struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	ImageURL        string      `json:"image_url"`
	GoogleDriveLink string      `json:"google_drive_link,omitempty"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	PriceMonthly    float64     `json:"price_monthly"`
	PriceYearly     float64     `json:"price_yearly"`
	AgentFee        float64     `json:"agent_fee"`
	Status          VillaStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// VillaInput is the insert payload. It deliberately has no ID field:
// identifiers are assigned by the remote store and a client-supplied id
// must never reach the insert request.
type VillaInput struct {
	Name            string      `json:"name" validate:"required"`
	ImageURL        string      `json:"image_url" validate:"required,url"`
	GoogleDriveLink string      `json:"google_drive_link,omitempty" validate:"omitempty,url"`
	Description     string      `json:"description"`
	Location        string      `json:"location" validate:"required"`
	PriceMonthly    float64     `json:"price_monthly" validate:"gte=0"`
	PriceYearly     float64     `json:"price_yearly" validate:"gte=0"`
	AgentFee        float64     `json:"agent_fee" validate:"gte=0"`
	Status          VillaStatus `json:"status" validate:"required,oneof=Available Rented Maintenance"`
}

// VillaUpdate is a partial update: nil fields are left unchanged by the
// remote store (omitted from the PATCH body).
type VillaUpdate struct {
	Name            *string      `json:"name,omitempty"`
	ImageURL        *string      `json:"image_url,omitempty" validate:"omitempty,url"`
	GoogleDriveLink *string      `json:"google_drive_link,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Location        *string      `json:"location,omitempty"`
	PriceMonthly    *float64     `json:"price_monthly,omitempty" validate:"omitempty,gte=0"`
	PriceYearly     *float64     `json:"price_yearly,omitempty" validate:"omitempty,gte=0"`
	AgentFee        *float64     `json:"agent_fee,omitempty" validate:"omitempty,gte=0"`
	Status          *VillaStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Rented Maintenance"`
}

// Empty reports whether the update carries no fields at all.
func (u VillaUpdate) Empty() bool {
	return u.Name == nil && u.ImageURL == nil && u.GoogleDriveLink == nil &&
		u.Description == nil && u.Location == nil && u.PriceMonthly == nil &&
		u.PriceYearly == nil && u.AgentFee == nil && u.Status == nil
}

// ApplyTo returns a copy of v with the supplied fields overwritten.
// Mirrors the remote store's partial-update semantics so tests can
// model it without a live store.
func (u VillaUpdate) ApplyTo(v Villa) Villa {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.ImageURL != nil {
		v.ImageURL = *u.ImageURL
	}
	if u.GoogleDriveLink != nil {
		v.GoogleDriveLink = *u.GoogleDriveLink
	}
	if u.Description != nil {
		v.Description = *u.Description
	}
	if u.Location != nil {
		v.Location = *u.Location
	}
	if u.PriceMonthly != nil {
		v.PriceMonthly = *u.PriceMonthly
	}
	if u.PriceYearly != nil {
		v.PriceYearly = *u.PriceYearly
	}
	if u.AgentFee != nil {
		v.AgentFee = *u.AgentFee
	}
	if u.Status != nil {
		v.Status = *u.Status
	}
	return v
}

// Stats are the dashboard aggregates derived from the catalog.
type Stats struct {
	TotalVillas              int     `json:"total_villas"`
	TotalPotentialCommission float64 `json:"total_potential_commission"`
	AvailableCount           int     `json:"available_count"`
	RentedCount              int     `json:"rented_count"`
	MaintenanceCount         int     `json:"maintenance_count"`
}

// ComputeStats aggregates the dashboard numbers over the full catalog.
func ComputeStats(villas []Villa) Stats {
	s := Stats{TotalVillas: len(villas)}
	for _, v := range villas {
		s.TotalPotentialCommission += v.AgentFee
		switch v.Status {
		case StatusAvailable:
			s.AvailableCount++
		case StatusRented:
			s.RentedCount++
		case StatusMaintenance:
			s.MaintenanceCount++
		}
	}
	return s
}
