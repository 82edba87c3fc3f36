package models

import "github.com/shopspring/decimal"

// ServiceCategory is the closed set of catalog categories.
type ServiceCategory string

const (
	CategoryCleaning    ServiceCategory = "Cleaning"
	CategoryMaintenance ServiceCategory = "Maintenance"
	CategoryRepair      ServiceCategory = "Repair"
	CategoryElectrical  ServiceCategory = "Electrical"
	CategoryOutdoor     ServiceCategory = "Outdoor"
	CategoryOther       ServiceCategory = "Other"
)

// ParseServiceCategory validates a category string.
func ParseServiceCategory(s string) (ServiceCategory, bool) {
	switch ServiceCategory(s) {
	case CategoryCleaning, CategoryMaintenance, CategoryRepair, CategoryElectrical, CategoryOutdoor, CategoryOther:
		return ServiceCategory(s), true
	default:
		return "", false
	}
}

// Service is an offered service type in the catalog, managed by admins.
// Appointments reference services by name only; no relationship is enforced.
type Service struct {
	BaseModel
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    string          `json:"duration"`
	Category    ServiceCategory `json:"category"`
	Active      bool            `json:"active"`
}
