// Package config loads the settings that govern a gpm process: store
// size, warning-character table, and how many macro expansions a
// batch run is allowed to drive concurrently.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"

	"github.com/bdwalton/gpm/vm"
)

// Config holds the environment-configurable defaults for the gpm CLI.
// Flags passed on the command line take precedence over these when
// both are set; see internal/cli.
type Config struct {
	StoreSize  int    `env:"GPM_STORE_SIZE" envDefault:"4096"`
	DefChar    string `env:"GPM_DEF_CHAR" envDefault:"&"`
	Concurrent int    `env:"GPM_BATCH_CONCURRENCY" envDefault:"4"`
}

// Load reads Config from the process environment, falling back to
// the defaults above for anything unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("gpm: loading config: %w", err)
	}
	return c, nil
}

// WarningChars returns Strachey's default warning-character table with
// Def overridden to the configured character, so the built-in macro
// names stay reachable alongside it.
func (c Config) WarningChars() (vm.WarningChars, error) {
	wc := vm.DefaultWarningChars()
	r := []rune(c.DefChar)
	if len(r) != 1 {
		return vm.WarningChars{}, fmt.Errorf("gpm: GPM_DEF_CHAR must be exactly one character, got %q", c.DefChar)
	}
	wc.Def = r[0]
	return wc, nil
}
