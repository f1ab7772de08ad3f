package interfaces

import (
	"log"
	"net/http"

	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type respondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type respondErrorFunc func(w http.ResponseWriter, status int, message string, errors ...[]string)

// respondServiceError maps the error taxonomy to HTTP statuses: validation
// 400, authorization 403, not-found 404, anything else a generic 500.
func respondServiceError(respondError respondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsAuthorizationError(err):
		respondError(w, http.StatusForbidden, err.Error())
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
