package graphql

import (
	"log/slog"
	"net/http"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// request is the standard GraphQL POST envelope.
type request struct {
	Query         string         `json:"query" validate:"required"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handler executes GraphQL documents against the schema.
type Handler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	UserUsecase    usecase.UserUsecase
	ProductUsecase usecase.ProductUsecase
	Logger         *slog.Logger
}

// NewHandler builds the schema once and returns the request handler.
func NewHandler(params HandlerParams) (*Handler, error) {
	schema, err := newSchema(params.UserUsecase, params.ProductUsecase)
	if err != nil {
		return nil, err
	}

	return &Handler{schema: schema, logger: params.Logger}, nil
}

// ServeGraphQL executes the posted document. Execution errors are returned
// inside the response body with HTTP 200, per GraphQL convention; only a
// malformed envelope is rejected at the transport level.
func (h *Handler) ServeGraphQL(c echo.Context) error {
	var req request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid graphql request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request().Context(),
	})

	h.presentErrors(result)

	return c.JSON(http.StatusOK, result)
}

// presentErrors rewrites resolver errors so that callers always see the
// fixed application messages, never wrapped internals.
func (h *Handler) presentErrors(result *graphql.Result) {
	for i := range result.Errors {
		original := unwrapResolverError(result.Errors[i].OriginalError())
		if original == nil {
			continue
		}

		var appErr domainerrors.AppError
		if errors.As(original, &appErr) {
			result.Errors[i].Message = appErr.Message()

			continue
		}

		// Engine-produced errors (parse, validation) already carry a
		// caller-facing message.
		var gqlErr *gqlerrors.Error
		if errors.As(original, &gqlErr) {
			continue
		}

		h.logger.Error("Unhandled resolver error", slog.Any("error", original))
		result.Errors[i].Message = domainerrors.ErrInternalError.Message()
	}
}

// unwrapResolverError digs through the executor's error wrapper, which does
// not participate in the errors.Unwrap chain.
func unwrapResolverError(err error) error {
	var gqlErr *gqlerrors.Error
	for errors.As(err, &gqlErr) && gqlErr.OriginalError != nil {
		err = gqlErr.OriginalError
		gqlErr = nil
	}

	return err
}
