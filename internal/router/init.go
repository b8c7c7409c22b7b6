package router

import (
	"fmt"

	"github.com/oksasatya/go-user-directory/internal/container"
	handlers "github.com/oksasatya/go-user-directory/internal/interface/http"
	"github.com/oksasatya/go-user-directory/internal/router/modules"
)

// InitModules builds every feature module from c and registers it with the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) error {
	directory := handlers.NewDirectoryHandler(c.DirectoryService(), c.Logger)
	r.Add(modules.NewDirectoryModule(directory))

	credentialSvc, err := c.CredentialService()
	if err != nil {
		return fmt.Errorf("credential service: %w", err)
	}
	r.Add(modules.NewCredentialModule(handlers.NewCredentialHandler(credentialSvc, c.Logger)))

	checks := make(map[string]handlers.HealthCheck)
	for name, check := range c.HealthChecks() {
		checks[name] = check
	}
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(checks)))

	if c.Config.DebugMetricsEnabled && c.Metrics != nil {
		r.Add(modules.NewDebugModule(c.Metrics))
	}
	return nil
}
