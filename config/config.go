// Package config loads engine/variant configuration from a TOML file,
// giving the cmd/caissa CLI a config file the way FrankyGo and TermChess
// load theirs (see SPEC_FULL.md §1a). The teacher has no configuration
// layer at all (every tunable is a compile-time constant); this package is
// new, grounded in the wider example pack's use of BurntSushi/toml.
package config

import "github.com/BurntSushi/toml"

// Config holds the tunables a caissa-based tool typically exposes.
type Config struct {
	// DefaultVariant is the registry key (see caissa.VariantByKey) used when
	// a PGN/FEN doesn't name one explicitly.
	DefaultVariant string `toml:"default_variant"`
	// StrictBoardValidation names the stricter placement checks in
	// Board.Valid / Variant.ValidBoard (exactly one king, no back-rank
	// pawns). It is loaded but not read: caissa.ParseFEN always validates
	// strictly.
	StrictBoardValidation bool `toml:"strict_board_validation"`
	// MaxPGNVariationDepth is a limit on PGN variation nesting. It is loaded
	// but not read: caissa.ParsePGN does not limit nesting depth.
	MaxPGNVariationDepth int `toml:"max_pgn_variation_depth"`
	// PerftDepth is the default search depth for the perft CLI command.
	PerftDepth int `toml:"perft_depth"`
}

// Default returns the configuration cmd/caissa falls back to when no config
// file is given.
func Default() Config {
	return Config{
		DefaultVariant:        "standard",
		StrictBoardValidation: true,
		MaxPGNVariationDepth:  32,
		PerftDepth:            4,
	}
}

// Load reads and parses a TOML config file at path, starting from Default()
// so an incomplete file still yields sane values.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
