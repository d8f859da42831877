package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP codes.
// Validation problems surface with the full error text so the caller can
// see which half of a time range failed or which schedule conflicts.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTimeFormat),
		errors.Is(err, ErrInvalidDayOfWeek),
		errors.Is(err, ErrInvalidPaymentMode),
		errors.Is(err, ErrInvalidPaymentDueDay),
		errors.Is(err, ErrInvalidCycleRange),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrScheduleOverlap),
		errors.Is(err, ErrComodatoAlreadyReturned):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrScheduleNotFound),
		errors.Is(err, ErrComodatoNotFound),
		errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrPlanPriceNotSet):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.WithError(err).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
