package handler

import (
	"github.com/deppfellow/hr-validator/internal/server"
	"github.com/deppfellow/hr-validator/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health   *HealthHandler
	Employee *EmployeeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Employee: NewEmployeeHandler(s, services.Employee),
	}
}
