package interfaces

import (
	"encoding/json"
	"net/http"
)

// Default response helpers matching the signatures handlers receive as
// dependencies. The handler tests inject these; cmd wires its own copies.

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, details ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(details) > 0 && len(details[0]) > 0 {
		payload["errors"] = details[0]
	}
	respondJSON(w, status, payload)
}
