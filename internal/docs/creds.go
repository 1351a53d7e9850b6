package docs

import (
	"strings"

	"google.golang.org/api/option"
)

// CredentialOptions turns the configured credential into client
// options. A value starting with "{" is inline service-account JSON;
// anything else is a file path. Empty falls back to application
// default credentials.
func CredentialOptions(cred string) []option.ClientOption {
	cred = strings.TrimSpace(cred)
	if cred == "" {
		return nil
	}
	if strings.HasPrefix(cred, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
