package bot

import (
	"fmt"
	"math/rand"
	"time"

	"crew/internal/app"
	"crew/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       domain.PlayerID
	Name     string
	Strategy Brain
}

// Play asks the agent to pick its card for the current round.
func (a *Agent) Play(player *domain.Player, round *domain.Round) (domain.Card, error) {
	return a.Strategy.CalculateMove(player, round)
}

// OnGameEvent notifies the agent of a game event.
func (a *Agent) OnGameEvent(event app.Event) {
	a.Strategy.OnEvent(event)
}

// Table seats one agent per player and answers every decision of a game on
// their behalf. It satisfies app.PlayerInterface and app.EventObserver.
type Table struct {
	agents map[domain.PlayerID]*Agent
	hands  map[domain.PlayerID][]domain.Card
	rng    *rand.Rand
}

// NewTable seats agents. rng drives the setup choices that have no better heuristic.
func NewTable(rng *rand.Rand, agents ...*Agent) *Table {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &Table{
		agents: make(map[domain.PlayerID]*Agent, len(agents)),
		hands:  make(map[domain.PlayerID][]domain.Card),
		rng:    rng,
	}
	for _, a := range agents {
		t.agents[a.ID] = a
	}
	return t
}

// NewCrew seats count bots of the given level, named after the identity pool.
func NewCrew(count int, level BotLevel, rng *rand.Rand) ([]*domain.Player, *Table, error) {
	names := make([]string, count)
	for i := range names {
		names[i] = GetBotIdentity(i).DisplayName
	}
	players, err := app.NewPlayers(names)
	if err != nil {
		return nil, nil, err
	}

	agents := make([]*Agent, 0, count)
	for _, p := range players {
		b, err := NewBrain(level, rng)
		if err != nil {
			return nil, nil, err
		}
		agents = append(agents, &Agent{ID: p.ID, Name: p.Name, Strategy: b})
	}
	return players, NewTable(rng, agents...), nil
}

func (t *Table) agent(id domain.PlayerID) (*Agent, error) {
	a, ok := t.agents[id]
	if !ok {
		return nil, fmt.Errorf("player %d: %w", id, ErrNoAgent)
	}
	return a, nil
}

func (t *Table) SelectCard(player *domain.Player, round *domain.Round) (domain.Card, error) {
	a, err := t.agent(player.ID)
	if err != nil {
		return domain.Card{}, err
	}
	return a.Play(player, round)
}

// SelectMission takes the mission card the player is best placed to win, judged
// by its dealt hand. A player with no hold on any card skips when allowed.
func (t *Table) SelectMission(id domain.PlayerID, remaining []domain.Card, canSkip bool) (domain.Card, bool, error) {
	if _, err := t.agent(id); err != nil {
		return domain.Card{}, false, err
	}
	if len(remaining) == 0 {
		return domain.Card{}, false, fmt.Errorf("no mission cards left: %w", app.ErrInvalidSelection)
	}

	best, bestScore := remaining[0], -1
	for _, c := range remaining {
		if s := holdOn(t.hands[id], c); s > bestScore {
			best, bestScore = c, s
		}
	}
	if bestScore == 0 && canSkip {
		return domain.Card{}, false, nil
	}
	return best, true, nil
}

// holdOn scores how well hand can win c: owning it counts most, then every
// higher card of the same suit.
func holdOn(hand []domain.Card, c domain.Card) int {
	score := 0
	for _, h := range hand {
		switch {
		case h == c:
			score += domain.MaxRegularRank + 1
		case h.Suit == c.Suit && h.Rank > c.Rank:
			score++
		}
	}
	return score
}

func (t *Table) SelectBlockedPlayers(players []*domain.Player, count int) ([]*domain.Player, error) {
	if count > len(players) {
		return nil, fmt.Errorf("block %d of %d players: %w", count, len(players), app.ErrInvalidSelection)
	}
	shuffled := append([]*domain.Player(nil), players...)
	t.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:count], nil
}

// SelectPlayerThatShouldNotWin picks the player holding the fewest high cards.
func (t *Table) SelectPlayerThatShouldNotWin(players []*domain.Player) (*domain.Player, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("no players: %w", app.ErrInvalidSelection)
	}
	var chosen *domain.Player
	fewest := 0
	for _, p := range players {
		n := 0
		for _, c := range t.hands[p.ID] {
			if c.Suit.IsTrump() || c.Rank >= domain.MaxRegularRank-2 {
				n++
			}
		}
		if chosen == nil || n < fewest {
			chosen, fewest = p, n
		}
	}
	return chosen, nil
}

// OnEvent forwards an event to its recipients, or to every agent for broadcasts.
func (t *Table) OnEvent(event app.Event) {
	if dealt, ok := event.Payload.(app.CardsDealtPayload); ok {
		t.hands[dealt.Player] = dealt.Hand
	}
	if len(event.Recipients) == 0 {
		for _, a := range t.agents {
			a.OnGameEvent(event)
		}
		return
	}
	for _, id := range event.Recipients {
		if a, ok := t.agents[id]; ok {
			a.OnGameEvent(event)
		}
	}
}
