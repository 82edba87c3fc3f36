package models

import "github.com/shopspring/decimal"

// MonthlyRevenue is one point in the revenue/appointment-volume series.
type MonthlyRevenue struct {
	Month        string          `json:"month"`
	Revenue      decimal.Decimal `json:"revenue"`
	Appointments int             `json:"appointments"`
}

// ServiceShare is the booking share of one catalog service.
type ServiceShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// EmployeePerformance summarizes one employee's completed work.
type EmployeePerformance struct {
	Name      string          `json:"name"`
	Completed int             `json:"completed"`
	Revenue   decimal.Decimal `json:"revenue"`
	Rating    float64         `json:"rating"`
}
