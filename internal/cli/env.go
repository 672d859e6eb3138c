// internal/cli/env.go
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Every option can be defaulted through an SSDRAW_* variable, taken
// from the environment or a .env file in the working directory. Flags
// still win over the environment.
func envString(key string, dst *string) error {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s", v, key)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s", v, key)
	}
	*dst = f
	return nil
}

// applyEnv overlays SSDRAW_* settings onto the built-in defaults.
func applyEnv(d *Options) error {
	_ = godotenv.Load() // a missing .env is fine

	steps := []func() error{
		func() error { return envString("SSDRAW_OUTPUT", &d.Output) },
		func() error { return envFloat("SSDRAW_WIDTH", &d.Width) },
		func() error { return envFloat("SSDRAW_HEIGHT", &d.Height) },
		func() error { return envFloat("SSDRAW_INDENT", &d.Indent) },
		func() error { return envInt("SSDRAW_RESIDUES", &d.Residues) },
		func() error { return envFloat("SSDRAW_LINE_DIST", &d.LineDist) },
		func() error { return envFloat("SSDRAW_BLOCK_DIST", &d.BlockDist) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
