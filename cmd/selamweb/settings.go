package main

import (
	"fmt"
	"os"

	"github.com/selamsoft/selam-web/internal/config"
)

// resolveConfig layers the environment over the optional --config file and
// fills the rest from defaults. Flags are applied by each command.
func resolveConfig() (config.Config, error) {
	var file config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		file = *loaded
	}

	env := config.FromEnv()
	return env.MergeWithDefaults(file), nil
}

// signingKeys derives the cookie keys from the configured secret. Without
// one, a random secret is used and tokens do not survive a restart.
func signingKeys(secret string) (*config.Keys, error) {
	if secret == "" {
		random, err := config.RandomSecret()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "Warning: SESSION_SECRET is not set; using a random secret. Open forms will expire on restart.\n")
		secret = random
	}
	return config.DeriveKeys(secret)
}
