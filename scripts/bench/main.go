// Command bench runs a fixed-depth perft and search benchmark over a
// suite of FENs, optionally under CPU or heap profiling, the same way
// FrankyGo's search tests wrap a benchmark run in profile.Start().Stop().
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"

	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/internal/logging"
	"laptudirm.com/x/rixen/search"
)

var log = logging.Get("bench")

// benchSuite is a small, fixed set of FENs exercising the opening,
// middlegame and endgame, used so bench results are comparable across
// runs and commits.
var benchSuite = []string{
	board.StartFEN,
	"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
	"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
	"8/8/4k3/8/8/4K3/4P3/8 w - - 0 1",
	"6k1/5ppp/8/8/8/8/8/R6K w - - 0 1",
}

func main() {
	perftDepth := flag.Int("perft-depth", 5, "perft depth to run over the bench suite")
	searchDepth := flag.Int("search-depth", 10, "fixed search depth to run over the bench suite")
	mode := flag.String("profile", "", "profiling mode: cpu, mem, or empty to disable")
	flag.Parse()

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	case "":
		// no profiling
	default:
		log.Fatalf("bench: unknown profile mode %q", *mode)
	}

	log.Infof("running perft to depth %d over %d positions", *perftDepth, len(benchSuite))
	perftStart := time.Now()
	perftNodes := 0
	for _, fen := range benchSuite {
		b := board.NewBoard(fen)
		perftNodes += board.Perft(b, *perftDepth)
	}
	perftTime := time.Since(perftStart)
	log.Infof("perft: %d nodes in %s (%.f nps)", perftNodes, perftTime, float64(perftNodes)/perftTime.Seconds())

	log.Infof("running search to depth %d over %d positions", *searchDepth, len(benchSuite))
	searchStart := time.Now()
	searchNodes := 0
	for _, fen := range benchSuite {
		ctx := search.NewContext(board.NewBoard(fen))
		_, _, err := ctx.Search(search.Limits{Depth: *searchDepth})
		if err != nil {
			log.Errorf("bench: %s: %v", fen, err)
			continue
		}
		report := ctx.GenerateReport()
		searchNodes += report.Nodes
	}
	searchTime := time.Since(searchStart)
	log.Infof("search: %d nodes in %s (%.f nps)", searchNodes, searchTime, float64(searchNodes)/searchTime.Seconds())

	fmt.Printf("bench: %d nodes\n", perftNodes+searchNodes)
}
