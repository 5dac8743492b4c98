package service

import (
	"github.com/deppfellow/hr-validator/internal/server"
)

// Services groups every service so routing code passes one value around.
type Services struct {
	Employee *EmployeeService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Employee: NewEmployeeService(s),
	}
}
