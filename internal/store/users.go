package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"servicehub-server/internal/models"
)

// UserStore holds the mock account table.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
	now   func() time.Time
}

func newUserStore(now func() time.Time) *UserStore {
	return &UserStore{users: make(map[string]*models.User), now: now}
}

// Authenticate checks credentials against the account table. Unknown email,
// wrong password and inactive account all yield the same generic AuthError.
func (s *UserStore) Authenticate(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findByEmail(email)
	if u == nil || !u.CheckPassword(password) || u.Status != models.UserActive {
		return models.User{}, models.AuthError{}
	}
	u.LastActive = s.now()
	return *u, nil
}

// Get returns a user by ID.
func (s *UserStore) Get(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.NotFoundError{Entity: "user", ID: id}
	}
	return *u, nil
}

// List returns all accounts ordered by join date, newest first.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedDate.After(out[j].JoinedDate) })
	return out
}

// Create adds an account. Email must be unique (case-insensitive).
func (s *UserStore) Create(name, email, password string, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmail(email) != nil {
		return models.User{}, models.ValidationError{Code: "EMAIL_TAKEN", Message: "user with this email already exists"}
	}
	now := s.now()
	u := &models.User{
		BaseModel:  models.NewBase(now),
		Name:       name,
		Email:      strings.ToLower(email),
		Role:       role,
		Status:     models.UserActive,
		JoinedDate: now,
		LastActive: now,
	}
	if err := u.SetPassword(password); err != nil {
		return models.User{}, err
	}
	s.users[u.ID] = u
	return *u, nil
}

// Update modifies name, email and role of an existing account.
func (s *UserStore) Update(id, name, email string, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.NotFoundError{Entity: "user", ID: id}
	}
	if other := s.findByEmail(email); other != nil && other.ID != id {
		return models.User{}, models.ValidationError{Code: "EMAIL_TAKEN", Message: "user with this email already exists"}
	}
	u.Name = name
	u.Email = strings.ToLower(email)
	u.Role = role
	u.Touch(s.now())
	return *u, nil
}

// Delete removes an account. The mock domain performs no referential cleanup.
func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return models.NotFoundError{Entity: "user", ID: id}
	}
	delete(s.users, id)
	return nil
}

// ToggleStatus flips an account between active and inactive.
func (s *UserStore) ToggleStatus(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.NotFoundError{Entity: "user", ID: id}
	}
	if u.Status == models.UserActive {
		u.Status = models.UserInactive
	} else {
		u.Status = models.UserActive
	}
	u.Touch(s.now())
	return *u, nil
}

// caller must hold the lock
func (s *UserStore) findByEmail(email string) *models.User {
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// insert is used by the seeder to install fixture accounts with fixed IDs.
func (s *UserStore) insert(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}
