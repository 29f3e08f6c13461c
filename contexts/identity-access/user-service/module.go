package userservice

import (
	"log/slog"
	"time"

	httpadapter "warden/contexts/identity-access/user-service/adapters/http"
	"warden/contexts/identity-access/user-service/adapters/memory"
	"warden/contexts/identity-access/user-service/application"
	"warden/contexts/identity-access/user-service/ports"
)

// Module is the user-service composition surface exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Tokens  application.TokenIssuer
	Store   *memory.Store
}

// Dependencies captures runtime ports/config required by NewModule.
type Dependencies struct {
	Directory  ports.Directory
	Clock      ports.Clock
	SigningKey []byte
	TokenTTL   time.Duration
	Logger     *slog.Logger
}

// NewModule wires the user-service use cases with explicit ports.
func NewModule(deps Dependencies) Module {
	tokens := application.NewTokenIssuer(deps.SigningKey, deps.TokenTTL, deps.Clock)
	service := application.Service{
		Directory: deps.Directory,
		Tokens:    tokens,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Tokens: tokens,
	}
}

// NewInMemoryModule wires the service against the in-memory directory for
// bootstrap defaults and tests. The store seeds the id-1 super admin.
func NewInMemoryModule(logger *slog.Logger, signingKey []byte) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Directory:  store,
		Clock:      store,
		SigningKey: signingKey,
		TokenTTL:   24 * time.Hour,
		Logger:     logger,
	})
	module.Store = store
	return module
}
