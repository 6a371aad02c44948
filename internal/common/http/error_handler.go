package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/workout-tracker/backend/internal/common/errors"
	"github.com/workout-tracker/backend/internal/common/httpmetrics"
	"github.com/workout-tracker/backend/internal/common/logger"
	"github.com/workout-tracker/backend/internal/observability/metrics"
)

// HandleError translates an error at the operation boundary into the fixed
// external response for its kind. Unrecognized errors are logged with detail
// and surfaced as a generic 500; no internal detail leaks to the caller.
func HandleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	if err == nil {
		return
	}

	ctx := r.Context()

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		status := domainErr.HTTPStatus()

		logFields := logger.Fields{
			"error_code": domainErr.Code(),
			"category":   string(domainErr.Category()),
			"status":     status,
			"action":     "domain_error",
		}

		if status >= http.StatusInternalServerError {
			log.WithFields(ctx, logFields).Errorf("domain error: %s", domainErr.Error())
		} else if log.ShouldLog(logger.DEBUG) {
			log.WithFields(ctx, logFields).Debugf("domain error: %s", domainErr.Error())
		}

		metrics.DomainErrorsTotal.WithLabelValues(
			string(domainErr.Category()),
			domainErr.Code(),
			strconv.Itoa(status),
		).Inc()
		metrics.HTTPErrorsTotal.WithLabelValues(
			strconv.Itoa(status),
			httpmetrics.NormalizePath(r.URL.Path),
			r.Method,
		).Inc()

		WriteError(w, status, domainErr.Message())
		return
	}

	logFields := logger.Fields{
		"error":  err.Error(),
		"action": "unhandled_error",
	}
	log.WithFields(ctx, logFields).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteError(w, http.StatusInternalServerError, "internal server error")
}
