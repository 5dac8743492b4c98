package router

import (
	"net/http"

	"github.com/deppfellow/hr-validator/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerEmployeeRoutes(g *echo.Group, h *handler.Handlers) {
	employees := g.Group("/employees")

	employees.POST("/general-info/validate",
		handler.Handle(h.Employee.Handler, h.Employee.ValidateGeneralInfo, http.StatusOK))

	employees.POST("/employment-information/validate",
		handler.Handle(h.Employee.Handler, h.Employee.ValidateEmploymentInformation, http.StatusOK))
}
