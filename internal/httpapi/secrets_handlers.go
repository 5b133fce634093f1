package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobfeed-engine/internal/secrets"
)

type SecretsHandler struct{}

type secretPayload struct {
	AppID  string `json:"app_id"`
	AppKey string `json:"app_key"`
	APIKey string `json:"api_key"`
}

// SetByPath stores connector credentials in the OS keyring. Values never
// land in the config file.
func (h SecretsHandler) SetByPath(w http.ResponseWriter, r *http.Request) {
	connector := strings.TrimPrefix(r.URL.Path, "/api/secrets/")

	var p secretPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var err error
	switch connector {
	case "adzuna":
		if p.AppID == "" || p.AppKey == "" {
			WriteError(w, r, http.StatusBadRequest, "missing_field", "app_id and app_key are required")
			return
		}
		if err = secrets.Set(secrets.AccountAdzunaAppID, p.AppID); err == nil {
			err = secrets.Set(secrets.AccountAdzunaAppKey, p.AppKey)
		}
	case "muse":
		err = secrets.Set(secrets.AccountMuseKey, p.APIKey)
	case "jooble":
		err = secrets.Set(secrets.AccountJoobleKey, p.APIKey)
	default:
		WriteError(w, r, http.StatusNotFound, "unknown_connector", "unknown connector")
		return
	}

	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "keyring_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}
