package models

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentUpcoming   AppointmentStatus = "upcoming"
	AppointmentInProgress AppointmentStatus = "in-progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

var appointmentTransitions = map[AppointmentStatus]map[AppointmentStatus]bool{
	AppointmentUpcoming:   {AppointmentInProgress: true, AppointmentCancelled: true},
	AppointmentInProgress: {AppointmentCompleted: true},
	AppointmentCompleted:  {},
	AppointmentCancelled:  {},
}

// CanTransition reports whether an appointment may move from one status to another.
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	m, ok := appointmentTransitions[s]
	if !ok {
		return false
	}
	return m[to]
}

// UnassignedEmployee is the sentinel used before an employee picks up a booking.
const UnassignedEmployee = "unassigned"

// Appointment represents a customer booking for a single service visit.
type Appointment struct {
	BaseModel
	CustomerID       string            `json:"customerId"`
	ServiceType      string            `json:"serviceType"`
	Date             string            `json:"date"` // YYYY-MM-DD
	Time             string            `json:"time"` // slot label, e.g. "10:00 AM"
	Location         string            `json:"location"`
	Status           AppointmentStatus `json:"status"`
	AssignedEmployee string            `json:"assignedEmployee"`
	// Progress is meaningful only once the appointment leaves "upcoming".
	Progress *int `json:"progress,omitempty"`
}
