package services

import (
	"testing"

	"warden/contexts/identity-access/user-service/domain/entities"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name     string
		required entities.Role
		caller   entities.Role
		want     bool
	}{
		{"any authenticated admin", "", entities.RoleAdmin, true},
		{"any authenticated user", "", entities.RoleUser, true},
		{"admin route admits admin", entities.RoleAdmin, entities.RoleAdmin, true},
		{"admin route rejects user", entities.RoleAdmin, entities.RoleUser, false},
		{"user route rejects admin", entities.RoleUser, entities.RoleAdmin, false},
		{"user route admits user", entities.RoleUser, entities.RoleUser, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Authorize(tc.required, tc.caller); got != tc.want {
				t.Fatalf("Authorize(%q, %q) = %v, want %v", tc.required, tc.caller, got, tc.want)
			}
		})
	}
}
