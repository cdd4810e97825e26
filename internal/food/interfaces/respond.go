package interfaces

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
	"github.com/sebuszqo/FoodManager/internal/logger"
)

type RespondJSON func(w http.ResponseWriter, status int, payload interface{})

// RespondError writes the error envelope; fields, when given, become its
// "errors" member.
type RespondError func(w http.ResponseWriter, status int, message string, fields ...map[string][]string)

const (
	msgInvalidBody = "Invalid request body"
	msgNotFound    = "Not found."
	msgValidation  = "Validation failed"
	msgProtected   = "Cannot delete this object because it is referenced by other objects."
	msgInternal    = "Internal server error"
)

// responder holds the response functions every handler is built with.
type responder struct {
	respondJSON  RespondJSON
	respondError RespondError
}

func newResponder(respondJSON RespondJSON, respondError RespondError) responder {
	if respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return responder{respondJSON: respondJSON, respondError: respondError}
}

// serviceError maps errors returned by the application layer to responses.
func (h responder) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case foodErrors.IsValidationError(err) || foodErrors.IsValidationErrors(err):
		h.respondError(w, http.StatusBadRequest, msgValidation, foodErrors.Fields(err))
	case errors.Is(err, foodErrors.ErrNotFound):
		h.respondError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, foodErrors.ErrProtected):
		h.respondError(w, http.StatusConflict, msgProtected)
	default:
		logger.FromContext(r.Context()).WithError(err).Error("Request failed")
		h.respondError(w, http.StatusInternalServerError, msgInternal)
	}
}

// decode reads a JSON body into dst. An empty body decodes as {}. A value of
// the wrong JSON type is reported against its field.
func (h responder) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		h.respondError(w, http.StatusBadRequest, msgValidation, map[string][]string{
			typeErr.Field: {typeMismatch(typeErr.Type)},
		})
		return false
	}
	h.respondError(w, http.StatusBadRequest, msgInvalidBody)
	return false
}

func typeMismatch(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	}
	return "Invalid value."
}

// pathID parses {id}; anything that is not a positive integer is a 404, the
// same as an unknown row.
func (h responder) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

func (h responder) noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func isPartial(r *http.Request) bool {
	return r.Method == http.MethodPatch
}
