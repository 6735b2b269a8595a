package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Credentials is the saved login state written by `engagectl login`.
type Credentials struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	Token    string `yaml:"token"`
}

func CredentialsPath() string {
	if path, ok := os.LookupEnv("ENGAGE_CREDENTIALS"); ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".engage-credentials.yaml"
	}
	return filepath.Join(home, ".engage", "credentials.yaml")
}

func LoadCredentials() (*Credentials, error) {
	data, err := os.ReadFile(CredentialsPath())
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// DeleteCredentials removes the saved login state. Missing file is not an
// error; logout is idempotent.
func DeleteCredentials() error {
	err := os.Remove(CredentialsPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func SaveCredentials(creds *Credentials) error {
	data, err := yaml.Marshal(creds)
	if err != nil {
		return err
	}
	path := CredentialsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
