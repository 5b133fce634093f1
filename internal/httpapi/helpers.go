package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON is the success-path encoder; failures go through WriteError so
// they keep the envelope shape.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// methodMux dispatches one route by HTTP method. Unlisted methods get a 405.
func methodMux(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.Method]
		if !ok {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}
