package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/hr-validator/internal/middleware"
	"github.com/deppfellow/hr-validator/internal/server"
	"github.com/deppfellow/hr-validator/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is embedded by concrete handlers to reach shared dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives the decoded request payload
// and returns the value rendered on success.
type HandlerFunc[Res any] func(c echo.Context, payload validation.Payload) (Res, error)

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error

	// GetOperation names the handler kind in logs.
	GetOperation() string

	// AddAttributes records the successful result on the transaction.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler renders results as JSON with a fixed status.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	txn.AddAttribute("response.status", h.status)
	txn.AddAttribute("response.type", fmt.Sprintf("%T", result))
}

// handleRequest runs the shared pipeline: decode the body, call the
// handler, translate rejected payloads into a 400 and render the result.
func handleRequest(
	c echo.Context,
	handler func(c echo.Context, payload validation.Payload) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	payload, err := validation.BindPayload(c)
	if err != nil {
		logger.Warn().Err(err).Msg("request body could not be decoded")
		if txn != nil {
			txn.AddAttribute("validation.status", "malformed")
		}
		return err
	}

	handlerStart := time.Now()
	result, err := handler(c, payload)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		var fieldErrors validation.FieldErrors
		if errors.As(err, &fieldErrors) {
			first := fieldErrors.First()
			logger.Info().
				Int("error_count", len(fieldErrors)).
				Str("first_field", first.Field).
				Str("first_kind", string(first.Kind)).
				Dur("handler_duration", handlerDuration).
				Msg("payload rejected")

			if txn != nil {
				txn.AddAttribute("validation.status", "failed")
				txn.AddAttribute("validation.error_count", len(fieldErrors))
				txn.AddAttribute("validation.duration_ms", handlerDuration.Milliseconds())
			}

			return validation.ToHTTPError(err)
		}

		totalDuration := time.Since(start)
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed handler to an echo.HandlerFunc that renders JSON
// with status on success.
//
//	router.POST("/x", handler.Handle(h.Handler, h.X, http.StatusOK))
func Handle[Res any](h Handler, handler HandlerFunc[Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context, payload validation.Payload) (interface{}, error) {
			return handler(c, payload)
		}, JSONResponseHandler{status: status})
	}
}
