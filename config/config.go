// Package config loads the optional config.toml that seeds cmd/perft's
// default flags, so a user running perft repeatedly against the same
// position doesn't have to repeat -fen and -depth on every invocation.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level shape of config.toml. Every field has a usable
// zero value so a missing file, or a file missing a section, is never an
// error on its own.
type Config struct {
	Perft struct {
		FEN      string `toml:"fen"`
		Depth    int    `toml:"depth"`
		Parallel bool   `toml:"parallel"`
	} `toml:"perft"`
	Profile struct {
		CPUProfile string `toml:"cpu_profile"`
		MemProfile string `toml:"mem_profile"`
	} `toml:"profile"`
}

// Load reads and parses path. A missing file is not an error: it returns
// the zero Config, letting the caller fall back to its own defaults.
func Load(path string) (Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
