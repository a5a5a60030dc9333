package generate

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvAuthUser     = "OPENAPI_TYPEGEN_AUTH_USER"
	EnvAuthPassword = "OPENAPI_TYPEGEN_AUTH_PASSWORD"
)

// Env resolves settings from the process environment, falling back to the values of an optional
// dotenv file. Variables already set in the process take precedence, as with godotenv.Load.
type Env struct {
	file   map[string]string
	lookup func(string) (string, bool)
}

// LoadEnv reads envFile when it is not empty.
func LoadEnv(envFile string) (*Env, error) {
	env := &Env{lookup: os.LookupEnv}
	if envFile == "" {
		return env, nil
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}
	env.file = values

	return env, nil
}

// Get returns the value of key, or the empty string.
func (e *Env) Get(key string) string {
	if e.lookup != nil {
		if v, ok := e.lookup(key); ok {
			return v
		}
	}
	return e.file[key]
}

// Credentials returns the basic auth credentials, preferring explicit flag values.
func (e *Env) Credentials(user, password string) (string, string) {
	if user == "" {
		user = e.Get(EnvAuthUser)
	}
	if password == "" {
		password = e.Get(EnvAuthPassword)
	}
	return user, password
}
