package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

// ServiceStore holds the admin-managed service catalog.
type ServiceStore struct {
	mu    sync.RWMutex
	items map[string]*models.Service
	now   func() time.Time
}

func newServiceStore(now func() time.Time) *ServiceStore {
	return &ServiceStore{items: make(map[string]*models.Service), now: now}
}

// ServiceParams carries catalog create/update input.
type ServiceParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    string
	Category    models.ServiceCategory
}

func (p ServiceParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return models.ValidationError{Code: "NAME_REQUIRED", Message: "please provide a service name"}
	}
	if p.Price.IsNegative() {
		return models.ValidationError{Code: "PRICE_INVALID", Message: "price must not be negative"}
	}
	if _, ok := models.ParseServiceCategory(string(p.Category)); !ok {
		return models.ValidationError{Code: "CATEGORY_INVALID", Message: "unknown service category"}
	}
	return nil
}

// Create adds a catalog entry, active by default.
func (s *ServiceStore) Create(p ServiceParams) (models.Service, error) {
	if err := p.validate(); err != nil {
		return models.Service{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	svc := &models.Service{
		BaseModel:   models.NewBase(s.now()),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Duration:    p.Duration,
		Category:    p.Category,
		Active:      true,
	}
	s.items[svc.ID] = svc
	return *svc, nil
}

// Update replaces a catalog entry's editable fields.
func (s *ServiceStore) Update(id string, p ServiceParams) (models.Service, error) {
	if err := p.validate(); err != nil {
		return models.Service{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.items[id]
	if !ok {
		return models.Service{}, models.NotFoundError{Entity: "service", ID: id}
	}
	svc.Name = p.Name
	svc.Description = p.Description
	svc.Price = p.Price
	svc.Duration = p.Duration
	svc.Category = p.Category
	svc.Touch(s.now())
	return *svc, nil
}

// Delete removes a catalog entry. Existing appointments keep referencing the
// service by name; no relationship is enforced.
func (s *ServiceStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return models.NotFoundError{Entity: "service", ID: id}
	}
	delete(s.items, id)
	return nil
}

// ToggleActive flips a catalog entry's availability.
func (s *ServiceStore) ToggleActive(id string) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.items[id]
	if !ok {
		return models.Service{}, models.NotFoundError{Entity: "service", ID: id}
	}
	svc.Active = !svc.Active
	svc.Touch(s.now())
	return *svc, nil
}

// Get returns a catalog entry by ID.
func (s *ServiceStore) Get(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.items[id]
	if !ok {
		return models.Service{}, models.NotFoundError{Entity: "service", ID: id}
	}
	return *svc, nil
}

// List returns the whole catalog, name order.
func (s *ServiceStore) List() []models.Service {
	return s.list(func(*models.Service) bool { return true })
}

// ListActive returns bookable services only.
func (s *ServiceStore) ListActive() []models.Service {
	return s.list(func(svc *models.Service) bool { return svc.Active })
}

func (s *ServiceStore) list(keep func(*models.Service) bool) []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Service
	for _, svc := range s.items {
		if keep(svc) {
			out = append(out, *svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// insert is used by the seeder.
func (s *ServiceStore) insert(svc *models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[svc.ID] = svc
}
