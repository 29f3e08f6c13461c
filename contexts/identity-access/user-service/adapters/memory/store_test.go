package memory

import (
	"context"
	"errors"
	"testing"

	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
	"warden/contexts/identity-access/user-service/domain/services"
	"warden/contexts/identity-access/user-service/ports"
)

func TestNewStoreSeedsSuperAdmin(t *testing.T) {
	store := NewStore()

	admin, err := store.FindByID(context.Background(), entities.SuperAdminID)
	if err != nil {
		t.Fatalf("find seeded admin failed: %v", err)
	}
	if admin.Username != SeedAdminUsername {
		t.Fatalf("unexpected seed username %q", admin.Username)
	}
	if admin.Role != entities.RoleAdmin {
		t.Fatalf("unexpected seed role %q", admin.Role)
	}
	if !admin.Enabled {
		t.Fatal("expected seeded admin to be enabled")
	}
	if !services.VerifyPassword(SeedAdminPassword, admin.PasswordHash) {
		t.Fatal("expected seed password to verify against stored hash")
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first, err := store.Create(context.Background(), entities.User{Username: "alice", Role: entities.RoleUser, Enabled: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := store.Create(context.Background(), entities.User{Username: "bob", Role: entities.RoleUser, Enabled: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != entities.SuperAdminID+1 || second.ID != first.ID+1 {
		t.Fatalf("unexpected ids %d, %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set on create")
	}
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	store := NewStore()

	if _, err := store.Create(context.Background(), entities.User{Username: SeedAdminUsername}); !errors.Is(err, domainerrors.ErrUsernameTaken) {
		t.Fatalf("expected username taken, got %v", err)
	}
}

func TestSoftDeleteHidesRecord(t *testing.T) {
	store := NewStore()

	created, err := store.Create(context.Background(), entities.User{Username: "alice", Role: entities.RoleUser, Enabled: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.SoftDelete(context.Background(), created.ID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	if _, err := store.FindByID(context.Background(), created.ID); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected deleted record hidden from FindByID, got %v", err)
	}
	if _, err := store.FindByUsername(context.Background(), "alice"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected deleted record hidden from FindByUsername, got %v", err)
	}
	if _, total, err := store.List(context.Background(), ports.ListFilter{}, ports.Page{Number: 1, Size: 10}); err != nil || total != 1 {
		t.Fatalf("expected deleted record hidden from List, total=%d err=%v", total, err)
	}
	if err := store.SoftDelete(context.Background(), created.ID); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected repeat delete to report not found, got %v", err)
	}
}

func TestListSearchMatchesUsernameOrID(t *testing.T) {
	store := NewStore()

	created, err := store.Create(context.Background(), entities.User{Username: "alice", Role: entities.RoleUser, Enabled: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, total, err := store.List(context.Background(), ports.ListFilter{Search: "lic"}, ports.Page{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Username != "alice" {
		t.Fatalf("expected username match, total=%d items=%v", total, items)
	}

	items, total, err = store.List(context.Background(), ports.ListFilter{Search: "2"}, ports.Page{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("expected id match, total=%d items=%v", total, items)
	}
}

func TestListOrdersByIDAndPages(t *testing.T) {
	store := NewStore()

	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		if _, err := store.Create(context.Background(), entities.User{Username: name, Role: entities.RoleUser, Enabled: true}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	items, total, err := store.List(context.Background(), ports.ListFilter{}, ports.Page{Number: 1, Size: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(items) != 3 {
		t.Fatalf("unexpected page 1 shape, total=%d len=%d", total, len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].ID >= items[i].ID {
			t.Fatalf("expected ascending id order, got %d before %d", items[i-1].ID, items[i].ID)
		}
	}

	items, total, err = store.List(context.Background(), ports.ListFilter{}, ports.Page{Number: 3, Size: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(items) != 0 {
		t.Fatalf("expected empty page past the end, total=%d len=%d", total, len(items))
	}
}

func TestUpdateMutators(t *testing.T) {
	store := NewStore()

	created, err := store.Create(context.Background(), entities.User{Username: "alice", Role: entities.RoleUser, Enabled: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := store.UpdateRole(context.Background(), created.ID, entities.RoleAdmin)
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if updated.Role != entities.RoleAdmin {
		t.Fatalf("unexpected role %q", updated.Role)
	}

	updated, err = store.UpdateEnabled(context.Background(), created.ID, false)
	if err != nil {
		t.Fatalf("update enabled failed: %v", err)
	}
	if updated.Enabled {
		t.Fatal("expected disabled record")
	}

	if err := store.UpdatePassword(context.Background(), created.ID, services.HashPassword("new-secret")); err != nil {
		t.Fatalf("update password failed: %v", err)
	}
	stored, err := store.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !services.VerifyPassword("new-secret", stored.PasswordHash) {
		t.Fatal("expected new password to verify")
	}

	if _, err := store.UpdateRole(context.Background(), 999, entities.RoleAdmin); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.UpdateEnabled(context.Background(), 999, true); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.UpdatePassword(context.Background(), 999, "x"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
