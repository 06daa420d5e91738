// Command ghoti-cli runs one toko-puyo (1P) or head-to-head (2P) simulation
// from the command line, mirroring simulator/src/bin/cli_1p.rs and
// cli_2p.rs: pick an AI by name, play it out over a shared tumo sequence,
// print the result, and optionally export a kifu JSON file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/exp/maps"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/kifu"
	"github.com/sorapuyo/ghoti/internal/match"
	"github.com/sorapuyo/ghoti/internal/puyo"
	"github.com/sorapuyo/ghoti/internal/tuner"
)

// knownAIs maps the --ai/--ai-1p/--ai-2p names this binary accepts to a
// short description, so an unrecognized name can suggest what's available
// instead of just failing.
var knownAIs = map[string]string{
	"BeamSearchAI": "the production parallel beam search AI",
	"RandomAI":     "uniformly random legal placements",
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: ghoti-cli <1p|2p> [flags]")
	}

	switch os.Args[1] {
	case "1p":
		run1P(os.Args[2:])
	case "2p":
		run2P(os.Args[2:])
	default:
		log.Fatalf("unknown mode %q: expected 1p or 2p", os.Args[1])
	}
}

func buildAI(name string, rng *rand.Rand, depth, width, workers int) match.AI {
	switch name {
	case "RandomAI":
		return match.NewRandomAI(rng)
	case "BeamSearchAI", "":
		if depth == 0 && width == 0 && workers == 0 {
			return match.NewBeamSearchAI(evaluator.Default())
		}
		return match.NewBeamSearchAICustom(evaluator.Default(), depth, width, workers)
	default:
		log.Fatalf("no AI found: %s (known AIs: %v)", name, maps.Keys(knownAIs))
		return nil
	}
}

func haipuyo(margin *int, length int, rng *rand.Rand) []puyo.Kumipuyo {
	if margin == nil {
		return puyo.GenerateRandomSequence(rng, length)
	}
	return tuner.HaipuyoSequence(*margin)
}

func run1P(args []string) {
	fs := flag.NewFlagSet("1p", flag.ExitOnError)
	ai := fs.String("ai", "BeamSearchAI", "AI to run (BeamSearchAI, RandomAI)")
	maxTumos := fs.Int("max-tumos", 100, "maximum number of tumos to place")
	visibleTumos := fs.Int("visible-tumos", 2, "how many upcoming tumos the AI can see")
	simulateCount := fs.Int("simulate-count", 1, "number of independent runs")
	requiredChainScore := fs.Int("required-chain-score", 0, "stop once a single chain scores at least this many points (0 disables)")
	prNumber := fs.Int("pr-number", 0, "pull request number; when set, exports a kifu JSON file instead of only logging")
	haipuyoMargin := fs.Int("haipuyo-margin", -1, "deterministic tumo table key (-1 picks a random sequence)")
	fs.Parse(args)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var margin *int
	if *haipuyoMargin >= 0 {
		margin = haipuyoMargin
	}
	var gate *int
	if *requiredChainScore > 0 {
		gate = requiredChainScore
	}

	aiName := *ai
	player := buildAI(aiName, rng, 0, 0, 0)

	log.Printf("> AI: %s (%d手読み)", aiName, *visibleTumos)
	for trial := 1; trial <= *simulateCount; trial++ {
		seq := haipuyo(margin, *maxTumos+*visibleTumos+1, rng)
		result := match.Run1P(player, seq, *visibleTumos, *maxTumos, gate)
		log.Printf("trial %d: score=%d tumos_played=%d dead=%v score_gate_hit=%v",
			trial, result.Score, result.TumosPlayed, result.Dead, result.ScoreGateHit)

		if *prNumber > 0 {
			out := kifu.NewSimulateResult1P(time.Now(), result, seq, *visibleTumos)
			path, err := out.ExportJSON(".", *prNumber, aiName, time.Now())
			if err != nil {
				log.Fatalf("export kifu: %v", err)
			}
			fmt.Printf("wrote %s\n", path)
		}
	}
}

func run2P(args []string) {
	fs := flag.NewFlagSet("2p", flag.ExitOnError)
	ai1Name := fs.String("ai-1p", "BeamSearchAI", "AI to run as 1P")
	ai2Name := fs.String("ai-2p", "BeamSearchAI", "AI to run as 2P")
	winGoal := fs.Int("win-goal", 30, "number of match wins needed to end the session")
	visibleTumos := fs.Int("visible-tumos", 2, "how many upcoming tumos each AI can see")
	beamDepth := fs.Int("beam-depth", 0, "override beam search depth (0 = production think-bucket schedule)")
	beamWidth := fs.Int("beam-width", 0, "override beam search width (0 = production think-bucket schedule)")
	beamParallel := fs.Int("beam-parallel", 0, "override beam search worker count (0 = production think-bucket schedule)")
	prNumber := fs.Int("pr-number", 0, "pull request number; when set, exports a kifu JSON file instead of only logging")
	haipuyoMargin := fs.Int("haipuyo-margin", -1, "deterministic tumo table key (-1 picks a random sequence per match)")
	fs.Parse(args)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var margin *int
	if *haipuyoMargin >= 0 {
		margin = haipuyoMargin
	}

	ai1 := buildAI(*ai1Name, rng, *beamDepth, *beamWidth, *beamParallel)
	ai2 := buildAI(*ai2Name, rng, *beamDepth, *beamWidth, *beamParallel)

	win1, win2 := 0, 0
	var matches []kifu.Match

	for win1 < *winGoal && win2 < *winGoal {
		seq := haipuyo(margin, puyo.TumoSequenceLength, rng)
		if margin != nil {
			*margin++
		}

		rec, finish := kifu.NewMatchRecorder()
		result := match.Run2P(seq, [2]match.AI{ai1, ai2}, *visibleTumos, rng, rec)

		won1P := result.Winner == 0
		if result.Winner == 0 {
			win1++
		} else if result.Winner == 1 {
			win2++
		}
		log.Printf("%3d vs %3d (%6d - %6d)", win1, win2, result.Score0, result.Score1)

		if *prNumber > 0 {
			matches = append(matches, finish(won1P, seq))
		}
	}

	log.Printf("Result: %3d vs %3d", win1, win2)

	if *prNumber > 0 {
		out := kifu.NewSimulateResult2P(time.Now(), win1, win2, *visibleTumos, matches)
		path, err := out.ExportJSON(".", *prNumber, *ai1Name, *ai2Name, time.Now())
		if err != nil {
			log.Fatalf("export kifu: %v", err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
