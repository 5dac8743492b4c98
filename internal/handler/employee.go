package handler

import (
	"github.com/deppfellow/hr-validator/internal/employee"
	"github.com/deppfellow/hr-validator/internal/server"
	"github.com/deppfellow/hr-validator/internal/service"
	"github.com/deppfellow/hr-validator/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmployeeHandler serves the employee validation endpoints.
type EmployeeHandler struct {
	Handler
	service *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler: NewHandler(s),
		service: employeeService,
	}
}

// ValidateGeneralInfo handles POST /api/v1/employees/general-info/validate.
func (h *EmployeeHandler) ValidateGeneralInfo(c echo.Context, payload validation.Payload) (*employee.EmployeeGeneralInfo, error) {
	return h.service.ValidateGeneralInfo(c.Request().Context(), payload)
}

// ValidateEmploymentInformation handles
// POST /api/v1/employees/employment-information/validate.
func (h *EmployeeHandler) ValidateEmploymentInformation(c echo.Context, payload validation.Payload) (*employee.EmploymentInformation, error) {
	return h.service.ValidateEmploymentInformation(c.Request().Context(), payload)
}
