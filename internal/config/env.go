package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// ChildEnv returns the environment tests are started with: the current
// process environment plus the variables from EnvFile, if set. The harness's
// own environment is left untouched.
func (c *Config) ChildEnv() ([]string, error) {
	env := os.Environ()
	if c.EnvFile == "" {
		return env, nil
	}

	vars, err := godotenv.Read(c.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", c.EnvFile, err)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Later entries win in exec, so the file overrides inherited values
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, vars[k]))
	}
	return env, nil
}
