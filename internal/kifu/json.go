package kifu

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sorapuyo/ghoti/internal/match"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// JsonState is one player's board snapshot at a recorded frame, matching
// simulate_2p.rs's JsonState: the AI's tumo cursor, the pfen-like board
// string, the running score, and the two ojama counters. ojama_fixed is
// garbage already queued against this player and not yet dropped;
// ojama_ongoing is garbage this player currently owes back (still
// resolving on the sender's side).
type JsonState struct {
	TumoIndex    int    `json:"tumo_index"`
	Field        string `json:"field"`
	Score        int    `json:"score"`
	OjamaFixed   int    `json:"ojama_fixed"`
	OjamaOngoing int    `json:"ojama_ongoing"`
}

func stateFromPlayer(p *match.PlayerState) JsonState {
	return JsonState{
		TumoIndex:    p.TumoIndex,
		Field:        EncodeField(p.Field),
		Score:        p.TotalScore,
		OjamaFixed:   p.PendingOjama,
		OjamaOngoing: p.OwedOjama,
	}
}

// JsonEvent is one recorded frame of a 2P match: both players' states as
// of that frame, player 1 always in JsonState1P and player 2 always in
// JsonState2P regardless of whose turn just resolved.
type JsonEvent struct {
	Frame        int       `json:"frame"`
	JsonState1P  JsonState `json:"json_state_1p"`
	JsonState2P  JsonState `json:"json_state_2p"`
}

// Match is one 2P game's full record: who won, the shared tumo sequence,
// and every recorded frame, matching simulate_2p.rs's JsonMatch.
type Match struct {
	ID         string      `json:"id"`
	Won1P      bool        `json:"won_1p"`
	Tumos      []string    `json:"tumos"`
	JsonEvents []JsonEvent `json:"json_events"`
}

// SimulateResult2P is a full GA-tuner or CLI 2P session: every match played
// up to win_goal wins for either side, matching simulate_2p.rs's
// SimulateResult2P. ID is new (uuid-based) relative to the original, so
// badger keys and exported file names have a collision-free handle
// alongside the human-readable Date.
type SimulateResult2P struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	WinCount1P   int       `json:"win_count_1p"`
	WinCount2P   int       `json:"win_count_2p"`
	VisibleTumos int       `json:"visible_tumos"`
	JsonMatches  []Match   `json:"json_matches"`
}

// recorder accumulates Match.JsonEvents during one Run2P call.
type recorder struct {
	events []JsonEvent
}

func (r *recorder) Record2P(frame int, p0, p1 *match.PlayerState) {
	r.events = append(r.events, JsonEvent{
		Frame:       frame,
		JsonState1P: stateFromPlayer(p0),
		JsonState2P: stateFromPlayer(p1),
	})
}

// NewMatchRecorder returns a match.EventRecorder that captures json_events
// for a single Run2P call, plus a func to finish it into a Match once the
// game is over.
func NewMatchRecorder() (match.EventRecorder, func(won1P bool, seq []puyo.Kumipuyo) Match) {
	r := &recorder{}
	finish := func(won1P bool, seq []puyo.Kumipuyo) Match {
		return Match{
			ID:         uuid.NewString(),
			Won1P:      won1P,
			Tumos:      EncodeTumoSeq(seq),
			JsonEvents: r.events,
		}
	}
	return r, finish
}

// NewSimulateResult2P assembles a full session record from the matches
// already played, timestamping it with now (callers provide it since the
// sandbox these scripts run in forbids Date/time.Now-at-call-time plumbing
// inside deterministic code paths; cmd/ghoti-cli stamps this at the top
// level).
func NewSimulateResult2P(now time.Time, winCount1P, winCount2P, visibleTumos int, matches []Match) SimulateResult2P {
	return SimulateResult2P{
		ID:           uuid.NewString(),
		Date:         now,
		WinCount1P:   winCount1P,
		WinCount2P:   winCount2P,
		VisibleTumos: visibleTumos,
		JsonMatches:  matches,
	}
}

// ExportJSON writes r to kifus/simulator_2p/{prNumber}_{ai1}_vs_{ai2}/, one
// timestamped file per call, matching SimulateResult2P::export_json.
func (r SimulateResult2P) ExportJSON(baseDir string, prNumber int, ai1Name, ai2Name string, now time.Time) (string, error) {
	dir := filepath.Join(baseDir, "kifus", "simulator_2p", fmt.Sprintf("%d_%s_vs_%s", prNumber, ai1Name, ai2Name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, now.Format("20060102_150405.000000")+".json")
	return path, os.WriteFile(path, data, 0644)
}

// JsonDecision is one think call's worth of output for a 1P run, matching
// simulate_1p.rs's JsonDecision. ThinkMs and LogOutput stay zero/empty here:
// the beam search scheduler doesn't thread timing or a per-decision log
// string back through the AI interface the way AIDecision did.
type JsonDecision struct {
	ThinkMs   int64            `json:"think_ms"`
	LogOutput string           `json:"log_output"`
	Decisions []puyo.Decision  `json:"decisions"`
}

// SimulateResult1P is a full solo run's record, matching simulate_1p.rs's
// SimulateResult1P.
type SimulateResult1P struct {
	ID            string         `json:"id"`
	Date          time.Time      `json:"date"`
	Score         int            `json:"score"`
	VisibleTumos  int            `json:"visible_tumos"`
	Tumos         []string       `json:"tumos"`
	JsonDecisions []JsonDecision `json:"json_decisions"`
}

// NewSimulateResult1P builds a SimulateResult1P from a finished match.Result1P
// and the tumo sequence it played against. Each decision gets its own
// single-element JsonDecision entry, mirroring how simulate_1p.rs pushes one
// AIDecision per tumo.
func NewSimulateResult1P(now time.Time, result match.Result1P, seq []puyo.Kumipuyo, visibleTumos int) SimulateResult1P {
	decisions := make([]JsonDecision, len(result.Decisions))
	for i, d := range result.Decisions {
		decisions[i] = JsonDecision{Decisions: []puyo.Decision{d}}
	}
	return SimulateResult1P{
		ID:            uuid.NewString(),
		Date:          now,
		Score:         result.Score,
		VisibleTumos:  visibleTumos,
		Tumos:         EncodeTumoSeq(seq),
		JsonDecisions: decisions,
	}
}

// ExportJSON writes r to kifus/simulator_1p/{prNumber}_{aiName}/, matching
// SimulateResult1P::export_json.
func (r SimulateResult1P) ExportJSON(baseDir string, prNumber int, aiName string, now time.Time) (string, error) {
	dir := filepath.Join(baseDir, "kifus", "simulator_1p", fmt.Sprintf("%d_%s", prNumber, aiName))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, now.Format("20060102_150405.000000")+".json")
	return path, os.WriteFile(path, data, 0644)
}
