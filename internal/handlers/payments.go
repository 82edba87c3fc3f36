package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// PaymentHandler handles the invoice ledger.
type PaymentHandler struct {
	Store *store.Store
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(s *store.Store) *PaymentHandler {
	return &PaymentHandler{Store: s}
}

// GetPaymentsForUser lists invoices: customers see their own, admins see all
// with optional ?status=, ?method= and ?q= filters.
func (h *PaymentHandler) GetPaymentsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var payments []models.Payment
	if userRole == models.RoleAdmin {
		payments = h.Store.Payments.ListFiltered(store.PaymentFilter{
			Status: c.Query("status"),
			Method: c.Query("method"),
			Query:  c.Query("q"),
		})
	} else {
		payments = h.Store.Payments.ListByCustomer(userID)
	}

	utils.Success(c, "Payments fetched successfully", payments)
}

// PayInvoice settles a pending invoice through the simulated gateway. Only the
// owning customer may pay it.
func (h *PaymentHandler) PayInvoice(c *gin.Context) {
	var card store.CardDetails
	if !utils.BindAndValidate(c, &card) {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	payment, err := h.Store.Payments.Get(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if payment.CustomerID != userID {
		utils.Forbidden(c, "You can only pay your own invoices.")
		return
	}

	payment, err = h.Store.Payments.Pay(payment.ID, card)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Payment processed successfully", payment)
}

// GetPaymentStats returns the ledger aggregates for the admin dashboard.
func (h *PaymentHandler) GetPaymentStats(c *gin.Context) {
	utils.Success(c, "Payment stats", h.Store.Payments.Stats())
}

// ExportPayments streams the filtered ledger as a CSV report. Read-only.
func (h *PaymentHandler) ExportPayments(c *gin.Context) {
	payments := h.Store.Payments.ListFiltered(store.PaymentFilter{
		Status: c.Query("status"),
		Method: c.Query("method"),
		Query:  c.Query("q"),
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"invoice", "customer", "service", "amount", "method", "status", "transaction", "payment_date", "due_date"})
	for _, p := range payments {
		_ = w.Write([]string{
			p.InvoiceNumber,
			p.CustomerName,
			p.ServiceType,
			p.Amount.StringFixed(2),
			p.PaymentMethod,
			string(p.Status),
			p.TransactionID,
			formatDate(p.PaymentDate),
			formatDate(p.DueDate),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		utils.InternalServerError(c, "Failed to build report: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
