package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
	"warden/contexts/identity-access/user-service/domain/services"
	"warden/contexts/identity-access/user-service/ports"
)

// SeedAdminUsername and SeedAdminPassword are the credentials of the id-1
// super admin seeded by NewStore. Development wiring only; the postgres
// adapter seeds from configuration instead.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
)

type userRecord struct {
	entities.User
	deletedAt *time.Time
}

// Store is the in-memory Directory used by bootstrap defaults and tests.
type Store struct {
	mu     sync.RWMutex
	byID   map[int64]userRecord
	nextID int64
}

func NewStore() *Store {
	now := time.Now().UTC()
	return &Store{
		byID: map[int64]userRecord{
			entities.SuperAdminID: {
				User: entities.User{
					ID:           entities.SuperAdminID,
					Username:     SeedAdminUsername,
					PasswordHash: services.HashPassword(SeedAdminPassword),
					Role:         entities.RoleAdmin,
					Enabled:      true,
					CreatedAt:    now,
					UpdatedAt:    now,
				},
			},
		},
		nextID: entities.SuperAdminID + 1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) FindByUsername(ctx context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.byID {
		if record.deletedAt == nil && record.Username == username {
			return record.User, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) FindByID(ctx context.Context, id int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[id]
	if !ok || record.deletedAt != nil {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return record.User, nil
}

func (s *Store) Create(ctx context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.byID {
		if record.deletedAt == nil && record.Username == user.Username {
			return entities.User{}, domainerrors.ErrUsernameTaken
		}
	}

	now := time.Now().UTC()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextID++
	s.byID[user.ID] = userRecord{User: user}
	return user, nil
}

func (s *Store) List(ctx context.Context, filter ports.ListFilter, page ports.Page) ([]entities.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []entities.User
	for _, record := range s.byID {
		if record.deletedAt != nil {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(record.Username, filter.Search) &&
			!strings.Contains(strconv.FormatInt(record.ID, 10), filter.Search) {
			continue
		}
		matched = append(matched, record.User)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (page.Number - 1) * page.Size
	if start >= len(matched) {
		return []entities.User{}, total, nil
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *Store) UpdateRole(ctx context.Context, id int64, role entities.Role) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok || record.deletedAt != nil {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	record.Role = role
	record.UpdatedAt = time.Now().UTC()
	s.byID[id] = record
	return record.User, nil
}

func (s *Store) UpdateEnabled(ctx context.Context, id int64, enabled bool) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok || record.deletedAt != nil {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	record.Enabled = enabled
	record.UpdatedAt = time.Now().UTC()
	s.byID[id] = record
	return record.User, nil
}

func (s *Store) SoftDelete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok || record.deletedAt != nil {
		return domainerrors.ErrUserNotFound
	}
	now := time.Now().UTC()
	record.deletedAt = &now
	s.byID[id] = record
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id int64, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok || record.deletedAt != nil {
		return domainerrors.ErrUserNotFound
	}
	record.PasswordHash = newHash
	record.UpdatedAt = time.Now().UTC()
	s.byID[id] = record
	return nil
}
