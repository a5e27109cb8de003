package bot

import (
	"fmt"
	"math/rand"
	"sort"

	"crew/internal/app"
	"crew/internal/domain"
)

// legalCards returns the cards player may put on round, lowest first.
func legalCards(player *domain.Player, round *domain.Round) ([]domain.Card, error) {
	var options []domain.Card
	if led, ok := round.LedSuit(); ok {
		options = player.Hand.Playable(led)
	} else {
		options = player.Hand.Cards()
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%s: %w", player, ErrNoCards)
	}
	sortLowest(options)
	return options, nil
}

// sortLowest orders cards by rank with rockets last, so the cheapest card comes first.
func sortLowest(cards []domain.Card) {
	sort.Slice(cards, func(i, j int) bool {
		ti, tj := cards[i].Suit.IsTrump(), cards[j].Suit.IsTrump()
		if ti != tj {
			return tj
		}
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank < cards[j].Rank
		}
		return cards[i].Suit < cards[j].Suit
	})
}

// leading returns the play currently taking the trick.
func leading(round *domain.Round) (domain.Play, bool) {
	plays := round.Plays()
	if len(plays) == 0 {
		return domain.Play{}, false
	}
	best := plays[0]
	for _, p := range plays[1:] {
		if beats(p.Card, best.Card) {
			best = p
		}
	}
	return best, true
}

// beats reports whether c takes the trick from the current best card.
func beats(c, best domain.Card) bool {
	switch {
	case c.Suit.IsTrump() && !best.Suit.IsTrump():
		return true
	case c.Suit != best.Suit:
		return false
	default:
		return c.Rank > best.Rank
	}
}

// RandomBot plays any legal card.
type RandomBot struct {
	rng *rand.Rand
}

func (b *RandomBot) CalculateMove(player *domain.Player, round *domain.Round) (domain.Card, error) {
	options, err := legalCards(player, round)
	if err != nil {
		return domain.Card{}, err
	}
	return options[b.rng.Intn(len(options))], nil
}

func (b *RandomBot) OnEvent(app.Event) {}
