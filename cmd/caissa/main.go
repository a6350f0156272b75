// Command caissa loads a FEN (or the starting position), optionally replays
// a PGN mainline from it, prints the resulting position, and runs perft on
// it. Grounded in the teacher's internal/perft
// main.go CLI (flag-driven depth/verbose perft runner), generalized to also
// drive the replay engine and to load its defaults from config.Config
// instead of flag defaults alone.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caissalib/caissa"
	"github.com/caissalib/caissa/caissalog"
	"github.com/caissalib/caissa/cli"
	"github.com/caissalib/caissa/config"
	"github.com/caissalib/caissa/internal/perft"
)

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file")
	fen := flag.String("fen", "", "FEN to load instead of the starting position")
	variantKey := flag.String("variant", "", "variant key (defaults to config's default_variant)")
	depth := flag.Int("depth", 0, "perft depth (0 uses the config's perft_depth)")
	pgnPath := flag.String("pgn", "", "PGN file to replay")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			caissalog.Errorf("loading config %s: %v", *cfgPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	key := cfg.DefaultVariant
	if *variantKey != "" {
		key = *variantKey
	}
	variant, ok := caissa.VariantByKey(key)
	if !ok {
		caissalog.Errorf("unknown variant %q", key)
		os.Exit(1)
	}

	var p caissa.Position
	if *fen != "" {
		parsed, err := caissa.ParseFEN(*fen, variant)
		if err != nil {
			caissalog.Errorf("parsing FEN: %v", err)
			os.Exit(1)
		}
		p = parsed
	} else {
		p = caissa.NewGame(variant)
	}

	if *pgnPath != "" {
		data, err := os.ReadFile(*pgnPath)
		if err != nil {
			caissalog.Errorf("reading PGN %s: %v", *pgnPath, err)
			os.Exit(1)
		}
		game, err := caissa.ParsePGN(string(data))
		if err != nil {
			caissalog.Errorf("parsing PGN: %v", err)
			os.Exit(1)
		}
		result := caissa.Replay(p, game)
		if !result.Complete {
			caissalog.Warnf("replay stopped at move %d: %v", result.FailedAt, result.Err)
		}
		p = result.Positions[len(result.Positions)-1]
	}

	fmt.Print(cli.FormatPosition(p))

	d := *depth
	if d == 0 {
		d = cfg.PerftDepth
	}
	start := time.Now()
	nodes := perft.Count(p, d)
	caissalog.Infof("perft(%d) = %d nodes in %s", d, nodes, time.Since(start))
	fmt.Printf("perft(%d) = %d nodes (%s)\n", d, nodes, time.Since(start))
}
