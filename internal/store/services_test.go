package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

func TestCreateServiceDefaults(t *testing.T) {
	s, _ := testClock(t)

	svc, err := s.Services.Create(ServiceParams{
		Name:     "Gutter Cleaning",
		Price:    decimal.RequireFromString("90"),
		Duration: "1 hour",
		Category: models.CategoryOutdoor,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !svc.Active {
		t.Fatalf("new services must start active")
	}
}

func TestCreateServiceValidation(t *testing.T) {
	s, _ := testClock(t)

	cases := []struct {
		name string
		p    ServiceParams
	}{
		{"blank name", ServiceParams{Name: "  ", Category: models.CategoryOther}},
		{"negative price", ServiceParams{Name: "X", Price: decimal.RequireFromString("-1"), Category: models.CategoryOther}},
		{"bad category", ServiceParams{Name: "X", Category: "plumbing-adjacent"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Services.Create(tc.p)
			var ve models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestListActiveHidesDisabled(t *testing.T) {
	s, _ := testClock(t)

	// svc-005 is seeded inactive.
	for _, svc := range s.Services.ListActive() {
		if svc.ID == "svc-005" {
			t.Fatalf("inactive service leaked into the active listing")
		}
	}
	if len(s.Services.List()) != len(s.Services.ListActive())+1 {
		t.Fatalf("expected exactly one inactive seeded service")
	}

	toggled, err := s.Services.ToggleActive("svc-005")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Active {
		t.Fatalf("expected svc-005 active after toggle")
	}
	if len(s.Services.List()) != len(s.Services.ListActive()) {
		t.Fatalf("all services should now be active")
	}
}
