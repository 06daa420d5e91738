// Command ghoti-tune drives the genetic-algorithm weight optimizer,
// mirroring optimizer/src/bin/ga_tuning_2p.rs / ga_tuning_1p.rs: load or
// seed a population, run generations until an end-request sentinel shows
// up, checkpointing after each one.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/match"
	"github.com/sorapuyo/ghoti/internal/storage"
	"github.com/sorapuyo/ghoti/internal/tuner"
)

func main() {
	mode := flag.String("mode", "2p", "tuning mode: 2p (pairwise matches) or 1p (solo toko-puyo fitness)")
	populationSize := flag.Int("population-size", 20, "number of weight vectors per generation")
	eliteSize := flag.Int("elite-size", 5, "number of top individuals carried forward unchanged")
	parallel := flag.Int("parallel", 12, "number of concurrent simulations")
	visibleTumos := flag.Int("visible-tumos", 10, "how many upcoming tumos each AI can see")
	winGoal := flag.Int("win-goal", 50, "match wins needed to settle a 2p pairing")
	beamDepth := flag.Int("beam-depth", 10, "beam search depth used during self-play")
	beamWidth := flag.Int("beam-width", 10, "beam search width used during self-play")
	beamParallel := flag.Int("beam-parallel", 1, "beam search worker count used during self-play")
	maxTumos := flag.Int("max-tumos", 100, "max tumos per 1p run")
	simulateCount := flag.Int("simulate-count", 3, "independent 1p runs averaged per member per generation")
	requiredChainScore := flag.Int("required-chain-score", 0, "1p run stop condition (0 disables)")
	configPath := flag.String("config", "", "optional YAML file overriding every flag above")
	flag.Parse()

	if *configPath != "" {
		cfg, ok, err := tuner.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		if ok {
			*mode, *populationSize, *eliteSize, *parallel = cfg.Mode, cfg.PopulationSize, cfg.EliteSize, cfg.Parallel
			*visibleTumos, *winGoal = cfg.VisibleTumos, cfg.WinGoal
			*beamDepth, *beamWidth, *beamParallel = cfg.BeamDepth, cfg.BeamWidth, cfg.BeamParallel
			*maxTumos, *simulateCount, *requiredChainScore = cfg.MaxTumos, cfg.SimulateCount, cfg.RequiredChainScore
			log.Printf("loaded config from %s", *configPath)
		}
	}

	if *eliteSize >= *populationSize {
		log.Fatalf("elite-size (%d) must be less than population-size (%d)", *eliteSize, *populationSize)
	}

	ckptDir, err := storage.GetCheckpointDir()
	if err != nil {
		log.Fatalf("checkpoint dir: %v", err)
	}
	store, err := storage.NewStore()
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	pop, ok := tuner.LoadCheckpoint(ckptDir)
	if !ok {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		pop = tuner.NewPopulation(*populationSize, rng)
	}

	switch *mode {
	case "2p":
		runTuner2P(pop, ckptDir, store, tuner.Options{
			PopulationSize: *populationSize,
			EliteSize:      *eliteSize,
			Parallel:       *parallel,
			VisibleTumos:   *visibleTumos,
			WinGoal:        *winGoal,
			BeamDepth:      *beamDepth,
			BeamWidth:      *beamWidth,
			BeamParallel:   *beamParallel,
		})
	case "1p":
		runTuner1P(pop, ckptDir, store, tuner.Options1P{
			PopulationSize:     *populationSize,
			EliteSize:          *eliteSize,
			Parallel:           *parallel,
			VisibleTumos:       *visibleTumos,
			MaxTumos:           *maxTumos,
			SimulateCount:      *simulateCount,
			RequiredChainScore: *requiredChainScore,
		})
	default:
		log.Fatalf("unknown mode %q: expected 1p or 2p", *mode)
	}
}

func runTuner2P(pop tuner.Population, ckptDir string, store *storage.Store, opts tuner.Options) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		start := time.Now()

		next, _, err := tuner.RunGeneration(ctx, pop, opts, rng)
		if err != nil {
			log.Fatalf("generation %d: %v", pop.Generation, err)
		}

		if err := tuner.SaveCheckpoint(ckptDir, store, next); err != nil {
			log.Printf("checkpoint: %v", err)
		}

		// Baselineとwin_goal先してみる: only meaningful once the top
		// individual has actually been bred (the untouched baseline
		// playing itself tells us nothing).
		if best := next.Members[0]; best.SubName != nil {
			strongest := match.NewBeamSearchAICustom(best, opts.BeamDepth, opts.BeamWidth, opts.BeamParallel)
			baseline := match.NewBeamSearchAI(evaluator.Default())
			seq := tuner.HaipuyoSequence(0)
			rematchRNG := rand.New(rand.NewSource(int64(pop.Generation)*7 + 1))

			var wins [2]int
			for wins[0] < opts.WinGoal && wins[1] < opts.WinGoal {
				result := match.Run2P(seq, [2]match.AI{strongest, baseline}, opts.VisibleTumos, rematchRNG, nil)
				if result.Winner == 0 || result.Winner == 1 {
					wins[result.Winner]++
				}
			}
			log.Printf("> %s v.s. Baseline => %s - %s", best.Name(), humanize.Comma(int64(wins[0])), humanize.Comma(int64(wins[1])))
		}

		log.Printf("> Elapsed: %s", time.Since(start).Round(time.Second))

		if tuner.ShouldStop(ckptDir, pop.Generation) {
			log.Printf("end-request observed at generation %d, stopping", pop.Generation)
			return
		}
		pop = next
	}
}

func runTuner1P(pop tuner.Population, ckptDir string, store *storage.Store, opts tuner.Options1P) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		start := time.Now()

		next, err := tuner.RunGeneration1P(ctx, pop, opts, rng)
		if err != nil {
			log.Fatalf("generation %d: %v", pop.Generation, err)
		}

		if err := tuner.SaveCheckpoint(ckptDir, store, next); err != nil {
			log.Printf("checkpoint: %v", err)
		}

		log.Printf("> Elapsed: %s", time.Since(start).Round(time.Second))

		if tuner.ShouldStop(ckptDir, pop.Generation) {
			log.Printf("end-request observed at generation %d, stopping", pop.Generation)
			return
		}
		pop = next
	}
}
