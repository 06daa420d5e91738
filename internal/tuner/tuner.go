package tuner

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sorapuyo/ghoti/internal/match"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// Options configures one GA run: population shape, the self-play match
// parameters, and the (deliberately cheap) beam search budget each
// contestant AI searches with.
type Options struct {
	PopulationSize int
	EliteSize      int
	Parallel       int
	VisibleTumos   int
	WinGoal        int
	BeamDepth      int
	BeamWidth      int
	BeamParallel   int
	// HaipuyoMargin selects a fixed tumo-table key (spec.md §6's
	// `--haipuyo-margin`) so every matchup in a generation plays the same
	// sequence of pieces; nil uses the rotating margin (generation/10)*200.
	HaipuyoMargin *int
}

// matchupResult is one pairwise game's outcome, keyed by population index.
type matchupResult struct {
	I, J   int
	Result match.Result2P
}

// RunGeneration plays every unordered pair of population members against
// each other over win-goal-bounded repeated matches, tallies wins, and
// returns the next generation: elites carried over by rank, the remainder
// bred by weighted crossover. Mirrors ga_tuning_2p.rs's matchup queue +
// worker-thread-pool + weighted-by-wins-squared selection.
func RunGeneration(ctx context.Context, pop Population, opts Options, rng *rand.Rand) (Population, []matchupResult, error) {
	if opts.EliteSize >= opts.PopulationSize {
		return Population{}, nil, fmt.Errorf("tuner: elite size %d must be less than population size %d", opts.EliteSize, opts.PopulationSize)
	}

	margin := pop.Generation / 10 * 200
	if opts.HaipuyoMargin != nil {
		margin = *opts.HaipuyoMargin
	}
	seq := HaipuyoSequence(margin)

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < opts.PopulationSize; i++ {
		for j := i + 1; j < opts.PopulationSize; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	results := make([]matchupResult, len(pairs))
	wins := make([]int, opts.PopulationSize)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for idx, p := range pairs {
		idx, p := idx, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			ai1 := match.NewBeamSearchAICustom(pop.Members[p.i], opts.BeamDepth, opts.BeamWidth, opts.BeamParallel)
			ai2 := match.NewBeamSearchAICustom(pop.Members[p.j], opts.BeamDepth, opts.BeamWidth, opts.BeamParallel)
			matchRNG := rand.New(rand.NewSource(int64(pop.Generation)*1_000_003 + int64(idx) + 1))

			result := playToWinGoal(seq, [2]match.AI{ai1, ai2}, opts.VisibleTumos, opts.WinGoal, matchRNG)

			mu.Lock()
			results[idx] = matchupResult{I: p.i, J: p.j, Result: result}
			if result.Winner == 0 {
				wins[p.i] += result.Score0
			} else if result.Winner == 1 {
				wins[p.j] += result.Score1
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Population{}, nil, err
	}

	ranked := make([]int, opts.PopulationSize)
	for i := range ranked {
		ranked[i] = i
	}
	sort.Slice(ranked, func(a, b int) bool { return wins[ranked[a]] > wins[ranked[b]] })

	log.Printf("[tuner] gen=%d margin=%d top=%q wins=%d", pop.Generation, margin, pop.Members[ranked[0]].Name(), wins[ranked[0]])

	return buildNextGeneration(pop, ranked, wins, opts.EliteSize, rng), results, nil
}

// playToWinGoal repeats 2P matches on the same opening sequence until one
// side reaches winGoal victories (simultaneous-death draws count for
// neither side, matching simulate_2p's repeated-games loop).
func playToWinGoal(seq []puyo.Kumipuyo, ais [2]match.AI, visibleTumos, winGoal int, rng *rand.Rand) match.Result2P {
	var wins [2]int
	var last match.Result2P
	for wins[0] < winGoal && wins[1] < winGoal {
		last = match.Run2P(seq, ais, visibleTumos, rng, nil)
		if last.Winner == 0 || last.Winner == 1 {
			wins[last.Winner]++
		}
	}
	last.Score0, last.Score1 = wins[0], wins[1]
	if wins[0] > wins[1] {
		last.Winner = 0
	} else if wins[1] > wins[0] {
		last.Winner = 1
	} else {
		last.Winner = -1
	}
	return last
}

// weightedPick samples an index from ranked with probability proportional
// to wins²+1, matching WeightedIndex::new(wins*wins+1).
func weightedPick(ranked []int, wins []int, rng *rand.Rand) int {
	total := 0
	for _, idx := range ranked {
		total += wins[idx]*wins[idx] + 1
	}
	roll := rng.Intn(total)
	for _, idx := range ranked {
		w := wins[idx]*wins[idx] + 1
		if roll < w {
			return idx
		}
		roll -= w
	}
	return ranked[len(ranked)-1]
}

// HaipuyoSequence returns the fixed deterministic 128-piece sequence for a
// given margin, matching HaipuyoDetector::retrieve_haipuyo(margin %
// TUMO_PATTERN).
func HaipuyoSequence(margin int) []puyo.Kumipuyo {
	key := uint16(((margin % puyo.TumoKeyCount) + puyo.TumoKeyCount) % puyo.TumoKeyCount)
	seq := puyo.SequenceForKey(key)
	return seq[:]
}
