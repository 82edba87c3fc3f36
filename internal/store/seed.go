package store

import (
	"time"

	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

// Demo credentials, mirrored in the login screen help text of the dashboard:
// john@example.com / customer123, sarah@example.com / employee123,
// admin@example.com / admin123.
func (s *Store) seed() error {
	now := time.Now()

	users := []struct {
		id, name, email, password string
		role                      models.Role
		status                    models.UserStatus
		joined                    string
	}{
		{"1", "John Doe", "john@example.com", "customer123", models.RoleCustomer, models.UserActive, "2025-01-15"},
		{"2", "Sarah Smith", "sarah@example.com", "employee123", models.RoleEmployee, models.UserActive, "2024-06-20"},
		{"3", "Admin User", "admin@example.com", "admin123", models.RoleAdmin, models.UserActive, "2024-01-01"},
		{"4", "Jane Smith", "jane@example.com", "customer123", models.RoleCustomer, models.UserActive, "2025-09-10"},
		{"5", "Mike Johnson", "mike@example.com", "employee123", models.RoleEmployee, models.UserActive, "2024-03-15"},
		{"6", "Lisa Brown", "lisa@example.com", "employee123", models.RoleEmployee, models.UserInactive, "2024-03-15"},
	}
	for _, u := range users {
		joined, _ := time.Parse(dateLayout, u.joined)
		account := &models.User{
			BaseModel:  models.BaseModel{ID: u.id, CreatedAt: joined, UpdatedAt: joined},
			Name:       u.name,
			Email:      u.email,
			Role:       u.role,
			Status:     u.status,
			JoinedDate: joined,
			LastActive: now,
		}
		if err := account.SetPassword(u.password); err != nil {
			return err
		}
		s.Users.insert(account)
	}

	services := []struct {
		id, name, description, price, duration string
		category                               models.ServiceCategory
		active                                 bool
	}{
		{"svc-001", "House Cleaning", "Complete home cleaning service", "100", "2 hours", models.CategoryCleaning, true},
		{"svc-002", "HVAC Maintenance", "Heating and cooling system checkup", "150", "1 hour", models.CategoryMaintenance, true},
		{"svc-003", "Plumbing Repair", "General plumbing fixes and repairs", "120", "1.5 hours", models.CategoryRepair, true},
		{"svc-004", "Electrical Work", "Electrical installation and repair", "180", "2 hours", models.CategoryElectrical, true},
		{"svc-005", "Landscaping", "Garden and lawn maintenance", "200", "3 hours", models.CategoryOutdoor, false},
	}
	for _, v := range services {
		s.Services.insert(&models.Service{
			BaseModel:   models.BaseModel{ID: v.id, CreatedAt: now, UpdatedAt: now},
			Name:        v.name,
			Description: v.description,
			Price:       decimal.RequireFromString(v.price),
			Duration:    v.duration,
			Category:    v.category,
			Active:      v.active,
		})
	}

	progress65 := 65
	progress100 := 100
	appointments := []*models.Appointment{
		{
			BaseModel:        models.BaseModel{ID: "apt-001", CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now},
			CustomerID:       "1",
			ServiceType:      "House Cleaning",
			Date:             now.AddDate(0, 0, 2).Format(dateLayout),
			Time:             "10:00 AM",
			Location:         "123 Main St, Apt 4B",
			Status:           models.AppointmentUpcoming,
			AssignedEmployee: models.UnassignedEmployee,
		},
		{
			BaseModel:        models.BaseModel{ID: "apt-002", CreatedAt: now.Add(-96 * time.Hour), UpdatedAt: now},
			CustomerID:       "1",
			ServiceType:      "HVAC Maintenance",
			Date:             now.Format(dateLayout),
			Time:             "2:00 PM",
			Location:         "123 Main St, Apt 4B",
			Status:           models.AppointmentInProgress,
			AssignedEmployee: "Sarah Smith",
			Progress:         &progress65,
		},
		{
			BaseModel:        models.BaseModel{ID: "apt-003", CreatedAt: now.Add(-240 * time.Hour), UpdatedAt: now},
			CustomerID:       "1",
			ServiceType:      "Plumbing Repair",
			Date:             now.AddDate(0, 0, -7).Format(dateLayout),
			Time:             "11:00 AM",
			Location:         "123 Main St, Apt 4B",
			Status:           models.AppointmentCompleted,
			AssignedEmployee: "Mike Johnson",
			Progress:         &progress100,
		},
		{
			BaseModel:        models.BaseModel{ID: "apt-004", CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now},
			CustomerID:       "4",
			ServiceType:      "Kitchen Renovation",
			Date:             now.AddDate(0, 0, 5).Format(dateLayout),
			Time:             "9:00 AM",
			Location:         "456 Oak Ave",
			Status:           models.AppointmentUpcoming,
			AssignedEmployee: models.UnassignedEmployee,
		},
	}
	for _, a := range appointments {
		s.Appointments.insert(a)
	}

	cost450 := decimal.RequireFromString("450")
	cost120 := decimal.RequireFromString("120")
	respondedAt := now.Add(-24 * time.Hour)
	modifications := []*models.ModificationRequest{
		{
			BaseModel:       models.BaseModel{ID: "mod-001", CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-48 * time.Hour)},
			CustomerID:      "1",
			CustomerName:    "John Doe",
			AppointmentID:   "apt-001",
			ServiceType:     "Kitchen Renovation",
			AppointmentDate: now.AddDate(0, 0, 9).Format(dateLayout),
			Title:           "Add Cabinet Installation",
			Description:     "Would like to add installation of upper cabinets to the current renovation project. Need 6 additional cabinets installed.",
			RequestType:     models.RequestAddition,
			Priority:        models.PriorityHigh,
			Status:          models.ModificationPending,
			Timeline:        []models.TimelineEvent{},
		},
		{
			BaseModel:       models.BaseModel{ID: "mod-002", CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-72 * time.Hour)},
			CustomerID:      "4",
			CustomerName:    "Jane Smith",
			AppointmentID:   "apt-004",
			ServiceType:     "House Cleaning",
			AppointmentDate: now.AddDate(0, 0, 6).Format(dateLayout),
			Title:           "Change Cleaning Scope",
			Description:     "Need to exclude the basement from cleaning service and add deep cleaning for the kitchen instead.",
			RequestType:     models.RequestChange,
			Priority:        models.PriorityMedium,
			Status:          models.ModificationPending,
			Timeline:        []models.TimelineEvent{},
		},
		{
			BaseModel:       models.BaseModel{ID: "mod-003", CreatedAt: now.Add(-96 * time.Hour), UpdatedAt: respondedAt},
			CustomerID:      "1",
			CustomerName:    "John Doe",
			AppointmentID:   "apt-002",
			ServiceType:     "HVAC Maintenance",
			AppointmentDate: now.AddDate(0, 0, -3).Format(dateLayout),
			Title:           "Replace Old Filters",
			Description:     "During inspection, found filters are very old. Requesting replacement with high-efficiency filters.",
			RequestType:     models.RequestAddition,
			Priority:        models.PriorityUrgent,
			Status:          models.ModificationApproved,
			EstimatedCost:   &cost120,
			AdminResponse:   "Approved. Technician will bring high-efficiency filters. Additional cost added to invoice.",
			RespondedBy:     "Admin User",
			RespondedAt:     &respondedAt,
			Timeline:        []models.TimelineEvent{},
		},
		{
			BaseModel:       models.BaseModel{ID: "mod-004", CreatedAt: now.Add(-360 * time.Hour), UpdatedAt: now},
			CustomerID:      "1",
			CustomerName:    "John Doe",
			AppointmentID:   "apt-003",
			ServiceType:     "Kitchen Renovation",
			AppointmentDate: now.AddDate(0, 0, -15).Format(dateLayout),
			Title:           "Kitchen Renovation",
			Description:     "Replace countertops and install new cabinets",
			RequestType:     models.RequestChange,
			Priority:        models.PriorityHigh,
			Status:          models.ModificationInProgress,
			EstimatedCost:   &cost450,
			AdminResponse:   "Approved after site assessment.",
			RespondedBy:     "Admin User",
			RespondedAt:     &respondedAt,
			AssignedTo:      "Sarah Smith",
			Timeline: []models.TimelineEvent{
				{ID: "tl-001", Title: "Initial Assessment", Description: "Site visit and measurements completed", Date: now.AddDate(0, 0, -15), Completed: true},
				{ID: "tl-002", Title: "Design Approval", Description: "Kitchen design approved by customer", Date: now.AddDate(0, 0, -10), Completed: true},
				{ID: "tl-003", Title: "Material Procurement", Description: "Ordering cabinets and countertops", Date: now.AddDate(0, 0, -5), Completed: true},
				{ID: "tl-004", Title: "Installation Phase", Description: "Installing new cabinets", Date: now.AddDate(0, 0, 5), Completed: false},
				{ID: "tl-005", Title: "Final Inspection", Description: "Quality check and customer approval", Date: now.AddDate(0, 0, 15), Completed: false},
			},
		},
	}
	for _, r := range modifications {
		s.Modifications.insert(r)
	}

	paid := now.Add(-120 * time.Hour)
	due := now.AddDate(0, 0, 7)
	payments := []*models.Payment{
		{
			BaseModel:     models.BaseModel{ID: "pay-001", CreatedAt: now.Add(-144 * time.Hour), UpdatedAt: paid},
			InvoiceNumber: "INV-2025-001",
			CustomerID:    "1",
			CustomerName:  "John Doe",
			AppointmentID: "apt-003",
			ServiceType:   "House Cleaning",
			Amount:        decimal.RequireFromString("100.00"),
			PaymentMethod: "Credit Card ****1234",
			Status:        models.PaymentCompleted,
			TransactionID: "txn_1a2b3c4d5e6f",
			PaymentDate:   &paid,
		},
		{
			BaseModel:     models.BaseModel{ID: "pay-002", CreatedAt: now.Add(-96 * time.Hour), UpdatedAt: now.Add(-96 * time.Hour)},
			InvoiceNumber: "INV-2025-002",
			CustomerID:    "1",
			CustomerName:  "John Doe",
			AppointmentID: "apt-002",
			ServiceType:   "HVAC Maintenance",
			Amount:        decimal.RequireFromString("150.00"),
			Status:        models.PaymentPending,
			DueDate:       &due,
		},
		{
			BaseModel:     models.BaseModel{ID: "pay-003", CreatedAt: now.Add(-480 * time.Hour), UpdatedAt: paid},
			InvoiceNumber: "INV-2025-003",
			CustomerID:    "1",
			CustomerName:  "John Doe",
			AppointmentID: "apt-001",
			ServiceType:   "Plumbing Repair",
			Amount:        decimal.RequireFromString("120.00"),
			PaymentMethod: "Credit Card ****5678",
			Status:        models.PaymentCompleted,
			TransactionID: "txn_9z8y7x6w5v4u",
			PaymentDate:   &paid,
		},
		{
			BaseModel:     models.BaseModel{ID: "pay-004", CreatedAt: now.Add(-200 * time.Hour), UpdatedAt: now.Add(-200 * time.Hour)},
			InvoiceNumber: "INV-2025-004",
			CustomerID:    "4",
			CustomerName:  "Jane Smith",
			AppointmentID: "apt-004",
			ServiceType:   "Electrical Work",
			Amount:        decimal.RequireFromString("180.00"),
			PaymentMethod: "Credit Card ****4321",
			Status:        models.PaymentFailed,
			TransactionID: "txn_failed_123",
		},
		{
			BaseModel:     models.BaseModel{ID: "pay-005", CreatedAt: now.Add(-300 * time.Hour), UpdatedAt: paid},
			InvoiceNumber: "INV-2025-005",
			CustomerID:    "4",
			CustomerName:  "Jane Smith",
			AppointmentID: "apt-004",
			ServiceType:   "Landscaping",
			Amount:        decimal.RequireFromString("200.00"),
			PaymentMethod: "Bank Transfer",
			Status:        models.PaymentCompleted,
			TransactionID: "txn_bank_567",
			PaymentDate:   &paid,
		},
	}
	for _, p := range payments {
		s.Payments.insert(p)
	}

	workItems := []*models.WorkItem{
		{
			BaseModel:        models.BaseModel{ID: "wi-001", CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now},
			Type:             models.WorkTypeAppointment,
			Title:            "HVAC Maintenance",
			CustomerName:     "John Doe",
			AssignedEmployee: "Sarah Smith",
			Status:           models.WorkInProgress,
			Progress:         65,
			EstimatedHours:   1,
			LoggedHours:      0.65,
		},
		{
			BaseModel:        models.BaseModel{ID: "wi-002", CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now},
			Type:             models.WorkTypeProject,
			Title:            "Kitchen Renovation - Installation",
			CustomerName:     "John Doe",
			AssignedEmployee: "Sarah Smith",
			Status:           models.WorkInProgress,
			Progress:         45,
			EstimatedHours:   8,
			LoggedHours:      3.5,
			ManualProgress:   true,
		},
		{
			BaseModel:        models.BaseModel{ID: "wi-003", CreatedAt: now.Add(-12 * time.Hour), UpdatedAt: now},
			Type:             models.WorkTypeAppointment,
			Title:            "House Cleaning",
			CustomerName:     "Jane Smith",
			AssignedEmployee: "Sarah Smith",
			Status:           models.WorkPending,
			EstimatedHours:   2,
		},
	}
	for _, w := range workItems {
		s.WorkItems.insert(w)
	}

	notifications := []*models.Notification{
		{ID: "ntf-001", UserID: "1", Type: models.NotifySuccess, Title: "Appointment Confirmed", Message: "Your House Cleaning appointment has been confirmed", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "ntf-002", UserID: "1", Type: models.NotifyInfo, Title: "Payment Due", Message: "Invoice INV-2025-002 is due soon", Timestamp: now.Add(-5 * time.Hour)},
		{ID: "ntf-003", UserID: "1", Type: models.NotifyWarning, Title: "Schedule Change", Message: "Your technician is running 15 minutes late", Timestamp: now.Add(-26 * time.Hour), Read: true},
		{ID: "ntf-004", UserID: "2", Type: models.NotifyInfo, Title: "New Assignment", Message: "You have been assigned to HVAC Maintenance", Timestamp: now.Add(-3 * time.Hour)},
		{ID: "ntf-005", UserID: "3", Type: models.NotifyInfo, Title: "Pending Reviews", Message: "2 modification requests await review", Timestamp: now.Add(-1 * time.Hour)},
	}
	for _, n := range notifications {
		s.Notifications.insert(n)
	}

	months := []struct {
		month   string
		revenue string
		appts   int
	}{
		{"Jan", "12500", 45}, {"Feb", "15200", 52}, {"Mar", "18900", 61},
		{"Apr", "16700", 58}, {"May", "21300", 68}, {"Jun", "24100", 75},
		{"Jul", "22800", 71}, {"Aug", "26500", 82}, {"Sep", "28200", 89},
		{"Oct", "15400", 48},
	}
	for _, m := range months {
		s.Revenue = append(s.Revenue, models.MonthlyRevenue{
			Month:        m.month,
			Revenue:      decimal.RequireFromString(m.revenue),
			Appointments: m.appts,
		})
	}

	s.EmployeeStats = []models.EmployeePerformance{
		{Name: "Sarah Smith", Completed: 45, Revenue: decimal.RequireFromString("6750"), Rating: 4.9},
		{Name: "Mike Johnson", Completed: 38, Revenue: decimal.RequireFromString("5700"), Rating: 4.7},
		{Name: "Tom Wilson", Completed: 42, Revenue: decimal.RequireFromString("6300"), Rating: 4.8},
		{Name: "Lisa Brown", Completed: 35, Revenue: decimal.RequireFromString("5250"), Rating: 4.6},
	}
	return nil
}
