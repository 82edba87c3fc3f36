package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// AnalyticsHandler computes the admin dashboard aggregates. Every endpoint is
// a pure read over the stores.
type AnalyticsHandler struct {
	Store *store.Store
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(s *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{Store: s}
}

// AnalyticsSummary is the headline card data.
type AnalyticsSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalAppointments int             `json:"totalAppointments"`
	AvgRevenue        decimal.Decimal `json:"avgRevenue"`
	RevenueGrowth     decimal.Decimal `json:"revenueGrowth"`
}

// GetSummary returns totals over the monthly revenue series plus the growth
// of the latest month against the one before it, as a percentage.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	series := h.Store.Revenue

	var summary AnalyticsSummary
	for _, m := range series {
		summary.TotalRevenue = summary.TotalRevenue.Add(m.Revenue)
		summary.TotalAppointments += m.Appointments
	}
	if len(series) > 0 {
		summary.AvgRevenue = summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(series)))).Round(2)
	}
	if n := len(series); n >= 2 && !series[n-2].Revenue.IsZero() {
		last, prev := series[n-1].Revenue, series[n-2].Revenue
		summary.RevenueGrowth = last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
	}

	utils.Success(c, "Analytics summary", summary)
}

// GetRevenue returns the monthly revenue and appointment-volume series.
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	utils.Success(c, "Revenue series", h.Store.Revenue)
}

// GetServiceShare returns how bookings split across service types, computed
// from the appointment book.
func (h *AnalyticsHandler) GetServiceShare(c *gin.Context) {
	counts := make(map[string]int)
	for _, a := range h.Store.Appointments.ListAll() {
		counts[a.ServiceType]++
	}

	shares := make([]models.ServiceShare, 0, len(counts))
	for name, n := range counts {
		shares = append(shares, models.ServiceShare{Name: name, Value: n})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Value != shares[j].Value {
			return shares[i].Value > shares[j].Value
		}
		return shares[i].Name < shares[j].Name
	})

	utils.Success(c, "Service share", shares)
}

// GetEmployeePerformance returns the per-employee completed/revenue/rating
// table.
func (h *AnalyticsHandler) GetEmployeePerformance(c *gin.Context) {
	utils.Success(c, "Employee performance", h.Store.EmployeeStats)
}
