// Package chatbot answers support questions from a fixed keyword rule list.
// There is no AI backend; replies are canned.
package chatbot

import "strings"

// Rule maps trigger keywords to a canned reply. Rules are checked in order;
// the first rule with any matching keyword wins.
type Rule struct {
	Keywords []string
	Reply    string
}

// DefaultRules cover the dashboard's support topics.
var DefaultRules = []Rule{
	{
		Keywords: []string{"appointment", "booking"},
		Reply:    "You can view and manage your appointments in the Appointments tab. To book a new service, click the \"Book Appointment\" button and pick a service, date and time slot.",
	},
	{
		Keywords: []string{"payment", "invoice"},
		Reply:    "Your invoices are listed in the Payments tab. Pending invoices can be paid online with a credit card; paid invoices show the transaction reference.",
	},
	{
		Keywords: []string{"modification", "project"},
		Reply:    "Modification requests are tracked in the Modification Requests tab. Submit a change order against an existing appointment and our team will review it within one business day.",
	},
	{
		Keywords: []string{"service", "price"},
		Reply:    "Our current services include house cleaning, HVAC maintenance, plumbing, electrical work and landscaping. Prices are listed on the booking form for each service.",
	},
	{
		Keywords: []string{"cancel"},
		Reply:    "Upcoming appointments can be cancelled from the Appointments tab at no charge. Appointments already in progress cannot be cancelled online; please contact support.",
	},
}

const fallbackReply = "I can help with appointments, payments, modification requests and our service catalog. What would you like to know?"

// Reply matches a message against the rule list, case-insensitively.
func Reply(rules []Rule, message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Reply
			}
		}
	}
	return fallbackReply
}
