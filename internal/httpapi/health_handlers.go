package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthHandler struct{}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":   true,
		"time": time.Now().Format(time.RFC3339),
	})
}
