package ports

import (
	"context"
	"time"

	"warden/contexts/identity-access/user-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// ListFilter narrows a user listing. Search fuzzy-matches the username or
// the id rendered as text.
type ListFilter struct {
	Search string
}

// Page is 1-based; Size caps the number of returned records.
type Page struct {
	Number int
	Size   int
}

// Directory is the user persistence boundary. Reads never return
// soft-deleted records. Lookups for absent records return
// domainerrors.ErrUserNotFound.
type Directory interface {
	FindByUsername(ctx context.Context, username string) (entities.User, error)
	FindByID(ctx context.Context, id int64) (entities.User, error)
	Create(ctx context.Context, user entities.User) (entities.User, error)
	List(ctx context.Context, filter ListFilter, page Page) ([]entities.User, int64, error)
	UpdateRole(ctx context.Context, id int64, role entities.Role) (entities.User, error)
	UpdateEnabled(ctx context.Context, id int64, enabled bool) (entities.User, error)
	SoftDelete(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, newHash string) error
}
