package chatbot

import (
	"strings"
	"testing"
)

func TestReplyMatchesFirstRule(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"How do I book an APPOINTMENT?", "Appointments tab"},
		{"where can I see my invoice", "Payments tab"},
		{"status of my modification request", "Modification Requests tab"},
		{"what does a cleaning service cost", "services include"},
		{"I want to cancel tomorrow", "cancelled from the Appointments tab"},
	}
	for _, tc := range cases {
		got := Reply(DefaultRules, tc.message)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("Reply(%q) = %q, want it to mention %q", tc.message, got, tc.want)
		}
	}
}

func TestReplyFallsBack(t *testing.T) {
	got := Reply(DefaultRules, "tell me a joke")
	if got != fallbackReply {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestEarlierRuleWins(t *testing.T) {
	// "cancel my appointment" matches both the appointment and cancel rules;
	// rule order decides.
	got := Reply(DefaultRules, "cancel my appointment")
	if got != DefaultRules[0].Reply {
		t.Fatalf("expected the appointment rule to win, got %q", got)
	}
}
