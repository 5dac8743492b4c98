package service

import (
	"context"

	"github.com/deppfellow/hr-validator/internal/employee"
	"github.com/deppfellow/hr-validator/internal/middleware"
	"github.com/deppfellow/hr-validator/internal/server"
	"github.com/deppfellow/hr-validator/internal/validation"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EmployeeService validates employee payloads.
type EmployeeService struct {
	server *server.Server
}

func NewEmployeeService(s *server.Server) *EmployeeService {
	return &EmployeeService{server: s}
}

// ValidateGeneralInfo returns the accepted record or validation.FieldErrors.
func (s *EmployeeService) ValidateGeneralInfo(ctx context.Context, payload validation.Payload) (*employee.EmployeeGeneralInfo, error) {
	defer newrelic.FromContext(ctx).StartSegment("employee.ValidateGeneralInfo").End()

	info, err := s.server.Validator.ValidateEmployeeGeneralInfo(payload)
	logOutcome(ctx, "general_info", err)
	return info, err
}

// ValidateEmploymentInformation returns the accepted record or
// validation.FieldErrors.
func (s *EmployeeService) ValidateEmploymentInformation(ctx context.Context, payload validation.Payload) (*employee.EmploymentInformation, error) {
	defer newrelic.FromContext(ctx).StartSegment("employee.ValidateEmploymentInformation").End()

	info, err := s.server.Validator.ValidateEmploymentInformation(payload)
	logOutcome(ctx, "employment_information", err)
	return info, err
}

func logOutcome(ctx context.Context, record string, err error) {
	logger := middleware.LoggerFromContext(ctx)

	fieldErrors, ok := err.(validation.FieldErrors)
	switch {
	case err == nil:
		logger.Debug().Str("record", record).Msg("payload accepted")
	case ok:
		for _, fe := range fieldErrors {
			logger.Debug().
				Str("record", record).
				Str("field", fe.Field).
				Str("kind", string(fe.Kind)).
				Msg(fe.Message)
		}
	}
}
