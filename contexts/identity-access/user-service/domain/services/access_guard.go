package services

import "warden/contexts/identity-access/user-service/domain/entities"

// Authorize decides whether a caller role satisfies a route's declared role
// requirement. An empty requirement admits any authenticated caller; routes
// with a requirement demand an exact match. Authentication (token validity)
// is resolved before this runs and is not this function's concern.
func Authorize(required entities.Role, caller entities.Role) bool {
	if required == "" {
		return true
	}
	return caller == required
}
