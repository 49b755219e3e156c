// Command perft runs the move generator's perft benchmark from the command
// line, or drops into an interactive REPL with -repl.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/fenwick-chess/bbperft/cli"
	"github.com/fenwick-chess/bbperft/config"
	"github.com/fenwick-chess/bbperft/fen"
	"github.com/fenwick-chess/bbperft/perft"
	"github.com/fenwick-chess/bbperft/uci"
)

const initialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("loading config.toml: %v", err)
	}

	fenFlag := flag.String("fen", firstNonEmpty(cfg.Perft.FEN, initialPos), "FEN of the position to search from")
	depthFlag := flag.Int("depth", firstNonZero(cfg.Perft.Depth, 1), "perft depth")
	parallelFlag := flag.Bool("parallel", cfg.Perft.Parallel, "divide the root moves across goroutines")
	replFlag := flag.Bool("repl", false, "start an interactive REPL instead of running one perft")
	cpuprofile := flag.String("cpuprofile", cfg.Profile.CPUProfile, "file to write a CPU profile to")
	memprofile := flag.String("memprofile", cfg.Profile.MemProfile, "file to write a memory profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	if *replFlag {
		if err := cli.Run(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	pos, err := fen.Parse(*fenFlag)
	if err != nil {
		log.Fatalf("parsing -fen: %v", err)
	}

	start := time.Now()
	entries := perft.Divide(pos, *depthFlag, *parallelFlag)
	for _, e := range entries {
		fmt.Printf("%s: %d\n", uci.Format(e.Move), e.Nodes)
	}
	fmt.Printf("total: %d\n", perft.Total(entries))
	log.Printf("elapsed: %s", time.Since(start))
}

func firstNonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func firstNonZero(n, fallback int) int {
	if n == 0 {
		return fallback
	}
	return n
}
