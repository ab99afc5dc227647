package models

import (
	"fmt"
	"time"
)

// ProviderStatus tracks a provider's lifecycle. Providers are never hard
// deleted; deactivation is a status change.
type ProviderStatus string

const (
	ProviderStatusActive    ProviderStatus = "active"
	ProviderStatusSuspended ProviderStatus = "suspended"
	ProviderStatusInactive  ProviderStatus = "inactive"
)

// Provider is a platform-registered service business.
type Provider struct {
	ID                 string            `bson:"id" json:"id"`
	Name               string            `bson:"name" json:"name"`
	Phone              string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Email              string            `bson:"email,omitempty" json:"email,omitempty"`
	Website            string            `bson:"website,omitempty" json:"website,omitempty"`
	City               string            `bson:"city,omitempty" json:"city,omitempty"`
	Categories         []ServiceCategory `bson:"categories" json:"categories"`
	Location           Coordinate        `bson:"location" json:"location"`
	ServiceRadiusMiles float64           `bson:"serviceRadiusMiles" json:"serviceRadiusMiles"`
	AcceptsNewRequests bool              `bson:"acceptsNewRequests" json:"acceptsNewRequests"`
	IsVerified         bool              `bson:"isVerified" json:"isVerified"`
	IsInsured          bool              `bson:"isInsured" json:"isInsured"`
	CompletedJobs      int               `bson:"completedJobs" json:"completedJobs"`
	AvgResponseHours   *float64          `bson:"avgResponseHours,omitempty" json:"avgResponseHours,omitempty"`
	YearsInBusiness    *int              `bson:"yearsInBusiness,omitempty" json:"yearsInBusiness,omitempty"`
	Description        string            `bson:"description,omitempty" json:"description,omitempty"`
	Status             ProviderStatus    `bson:"status" json:"status"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Validate enforces the provider invariants: at least one category and a
// positive service radius.
func (p *Provider) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("provider must serve at least one category")
	}
	for _, c := range p.Categories {
		if !c.Valid() {
			return fmt.Errorf("unknown service category %q", c)
		}
	}
	if p.ServiceRadiusMiles <= 0 {
		return fmt.Errorf("service radius must be positive, got %v", p.ServiceRadiusMiles)
	}
	if !p.Location.Valid() {
		return fmt.Errorf("provider location is out of range")
	}
	return nil
}

// ServesCategory reports whether the provider covers the given category.
func (p *Provider) ServesCategory(category ServiceCategory) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
