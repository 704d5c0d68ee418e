package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/teleclinic/telemed-api/pkg/apperror"
)

// Error translates a service error into the HTTP taxonomy and writes
// the response. Backend detail is logged through the request-scoped
// logger but never echoed to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	if appErr.Kind == apperror.KindInternal {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Message))
}
