package domain

import "fmt"

// MissionStatus is the bucket a mission currently sits in.
type MissionStatus int

const (
	StatusPending MissionStatus = iota
	StatusSucceeded
	StatusFailed
)

func (s MissionStatus) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Outcome is the state of the game after a validation step.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "continue"
	}
}

// ValidationPolicy selects how break and satisfaction checks interleave.
type ValidationPolicy int

const (
	// PolicyBreakFirst checks every pending mission for breakage before any
	// satisfaction check. A single break ends validation.
	PolicyBreakFirst ValidationPolicy = iota
	// PolicyInterleaved checks each mission for breakage then satisfaction in
	// declaration order. Missions satisfied before the first break are still resolved.
	PolicyInterleaved
)

// Resolution describes what a validation step changed.
type Resolution struct {
	Succeeded []Rule
	Failed    []Rule
	Outcome   Outcome
}

// Tracker partitions the missions of a game into pending, succeeded and failed.
// Missions only move out of pending, never back.
type Tracker struct {
	all       []Rule
	status    map[Rule]MissionStatus
	succeeded []Rule
	failed    []Rule
	policy    ValidationPolicy
}

// NewTracker tracks the given missions, all pending. Duplicates are collapsed.
func NewTracker(missions []Rule) *Tracker {
	t := &Tracker{status: make(map[Rule]MissionStatus, len(missions))}
	for _, m := range missions {
		if _, ok := t.status[m]; ok {
			continue
		}
		t.status[m] = StatusPending
		t.all = append(t.all, m)
	}
	return t
}

// SetPolicy changes the break/satisfaction interleaving.
func (t *Tracker) SetPolicy(p ValidationPolicy) {
	t.policy = p
}

// All returns every mission in declaration order.
func (t *Tracker) All() []Rule {
	return append([]Rule(nil), t.all...)
}

// Pending returns the unresolved missions in declaration order.
func (t *Tracker) Pending() []Rule {
	var out []Rule
	for _, m := range t.all {
		if t.status[m] == StatusPending {
			out = append(out, m)
		}
	}
	return out
}

// Succeeded returns the succeeded missions in commit order.
func (t *Tracker) Succeeded() []Rule {
	return append([]Rule(nil), t.succeeded...)
}

// Failed returns the failed missions in commit order.
func (t *Tracker) Failed() []Rule {
	return append([]Rule(nil), t.failed...)
}

// Status returns the bucket of m.
func (t *Tracker) Status(m Rule) (MissionStatus, error) {
	s, ok := t.status[m]
	if !ok {
		return StatusPending, fmt.Errorf("%v: %w", m, ErrUnknownMission)
	}
	return s, nil
}

// Complete reports whether every mission succeeded and none failed.
func (t *Tracker) Complete() bool {
	return !t.HasFailure() && len(t.succeeded) == len(t.all)
}

// HasFailure reports whether any mission failed.
func (t *Tracker) HasFailure() bool {
	return len(t.failed) != 0
}

// Decided reports whether the game outcome is settled.
func (t *Tracker) Decided() bool {
	return t.Complete() || t.HasFailure()
}

// Outcome summarizes the current buckets.
func (t *Tracker) Outcome() Outcome {
	switch {
	case t.HasFailure():
		return OutcomeLost
	case t.Complete():
		return OutcomeWon
	default:
		return OutcomeContinue
	}
}

func (t *Tracker) succeed(m Rule) {
	t.status[m] = StatusSucceeded
	t.succeeded = append(t.succeeded, m)
}

func (t *Tracker) fail(m Rule) {
	t.status[m] = StatusFailed
	t.failed = append(t.failed, m)
}

// Validate re-evaluates every pending mission against the history after a round.
//
// Broken missions fail. Satisfied missions are gathered as candidates and then
// checked against the order constraints, with prerequisites looked up in the
// union of earlier successes and this round's candidates. A candidate that
// violates its constraints fails.
func (t *Tracker) Validate(h *History, order OrderConstraints) (Resolution, error) {
	var res Resolution
	var candidates []Rule
	broken := false

	pending := t.Pending()
	if t.policy == PolicyBreakFirst {
		for _, m := range pending {
			b, err := m.Broken(h)
			if err != nil {
				return res, err
			}
			if b {
				t.fail(m)
				res.Failed = append(res.Failed, m)
				broken = true
			}
		}
		if !broken {
			for _, m := range pending {
				s, err := m.Satisfied(h)
				if err != nil {
					return res, err
				}
				if s {
					candidates = append(candidates, m)
				}
			}
		}
	} else {
		for _, m := range pending {
			b, err := m.Broken(h)
			if err != nil {
				return res, err
			}
			if b {
				t.fail(m)
				res.Failed = append(res.Failed, m)
				break
			}
			s, err := m.Satisfied(h)
			if err != nil {
				return res, err
			}
			if s {
				candidates = append(candidates, m)
			}
		}
	}

	combined := make(map[Rule]bool, len(t.succeeded)+len(candidates))
	for _, m := range t.succeeded {
		combined[m] = true
	}
	for _, m := range candidates {
		combined[m] = true
	}

	for _, m := range commitOrder(candidates, order, len(t.succeeded)+1) {
		if order.Respected(combined, m, len(t.succeeded)+1) {
			t.succeed(m)
			res.Succeeded = append(res.Succeeded, m)
		} else {
			t.fail(m)
			res.Failed = append(res.Failed, m)
		}
	}

	res.Outcome = t.Outcome()
	return res, nil
}

// commitOrder arranges same-round candidates. For each success slot, starting at
// next, it takes the candidate fixed to that slot, else the earliest candidate with
// no fixed position, else the earliest remaining candidate.
func commitOrder(candidates []Rule, order OrderConstraints, next int) []Rule {
	remaining := append([]Rule(nil), candidates...)
	out := make([]Rule, 0, len(candidates))
	for slot := next; len(remaining) > 0; slot++ {
		pick := -1
		for i, m := range remaining {
			if p, ok := order.Position(m); ok && p == slot {
				pick = i
				break
			}
		}
		if pick < 0 {
			for i, m := range remaining {
				if _, ok := order.Position(m); !ok {
					pick = i
					break
				}
			}
		}
		if pick < 0 {
			pick = 0
		}
		out = append(out, remaining[pick])
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}
	return out
}
