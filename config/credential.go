package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const credentialFile = ".mistral_key"

// CredentialPath returns the path to the API key file.
func CredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, credentialFile), nil
}

// LoadAPIKey reads the single-line API key file. A missing or unreadable
// file yields an empty key; the gateway then fails per request instead of
// blocking startup.
func LoadAPIKey() (string, error) {
	path, err := CredentialPath()
	if err != nil {
		return "", err
	}
	return readKey(path)
}

func readKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
