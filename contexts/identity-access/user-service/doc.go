// Package userservice implements the user administration service inside
// Warden: credential verification, identity token issuance, role-gated user
// CRUD, and self-service password updates.
//
// Layering:
// - domain: entities, invariants, errors, pure services (hashing, access guard)
// - application: use cases and the token issuer, using explicit ports
// - ports: stable boundaries for persistence and time
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the identity-access context.
// - Do not import other context adapters into domain/application.
package userservice
