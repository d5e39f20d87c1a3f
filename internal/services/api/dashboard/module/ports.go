package module

import "crimemap/internal/services/api/dashboard/domain"

// Ports are what the dashboard exports to other modules
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
