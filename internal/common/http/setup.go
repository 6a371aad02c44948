package http

import (
	"net/http"

	"github.com/workout-tracker/backend/internal/common/constants"
	"github.com/workout-tracker/backend/internal/common/httpmetrics"
	"github.com/workout-tracker/backend/internal/common/logger"
)

// BuildBaseHandler composes the ambient middleware chain around the service
// handler: security headers, panic recovery, trace IDs, body size limit,
// request metrics.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return SecurityHeadersMiddleware(recovery(TraceIDMiddleware(maxRequestSize(metrics.Wrap(handler)))))
}
