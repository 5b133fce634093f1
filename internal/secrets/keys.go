package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// "Service" groups the app's secrets in the OS keychain.
const KeyringService = "jobfeed"

// Account names, one per connector credential.
const (
	AccountAdzunaAppID  = "jobfeed:adzuna:app_id"
	AccountAdzunaAppKey = "jobfeed:adzuna:app_key"
	AccountMuseKey      = "jobfeed:muse:api_key"
	AccountJoobleKey    = "jobfeed:jooble:api_key"
)

// Lookup resolves a credential: environment first (CI, .env), then the OS
// keyring. Empty string means unset.
func Lookup(account, envVar string) string {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v
	}
	v, err := keyring.Get(KeyringService, account)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
