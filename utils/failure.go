package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Failure is a wrapper for error messages and codes using standard HTTP
// response codes. The code doubles as the error class: 400 validation,
// 404 not found, 409 uniqueness violation, 422 state conflict, 500 store
// failure.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a Failure for malformed input (bad date, non-numeric
// amount, out-of-range quantity or discount).
func Validation(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Validationf(format string, args ...interface{}) error {
	return &Failure{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a Failure for a missing entity.
func NotFound(entityName string) error {
	return &Failure{Code: http.StatusNotFound, Message: entityName + " not found"}
}

// Conflict returns a Failure for a uniqueness violation.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// StateConflict returns a Failure for an operation that is valid in form but
// not in the entity's current state (room occupied, booking no longer active,
// bill already written).
func StateConflict(msg string) error {
	return &Failure{Code: http.StatusUnprocessableEntity, Message: msg}
}

// Internal logs the store-layer error and returns a Failure carrying only a
// generic message; driver and SQL detail stays out of response bodies.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	log.Error().Err(err).Msg("internal error")
	return &Failure{Code: http.StatusInternalServerError, Message: "internal server error"}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}
	return http.StatusInternalServerError
}
