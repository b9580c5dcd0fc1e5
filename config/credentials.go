package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Credentials are the login credentials. They are only read from the
// environment, never from the config file.
type Credentials struct {
	Email    string `env:"NOTIFICATION_CLIENT_EMAIL,required,notEmpty"`
	Password string `env:"NOTIFICATION_CLIENT_PASSWORD,required,notEmpty,unset"`
}

// LoadCredentials loads the credentials from environment variables
func LoadCredentials() (Credentials, error) {
	var creds Credentials
	if err := env.Parse(&creds); err != nil {
		return Credentials{}, fmt.Errorf("error loading credentials: %w", err)
	}
	return creds, nil
}
