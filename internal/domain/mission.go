package domain

import "fmt"

// RuleKind identifies the variant of a mission rule.
type RuleKind int

const (
	RulePlayerMustWinCard RuleKind = iota + 1
	RuleNeverWinWithRank
	RuleWinOnceWithRank
	RuleMustWinAllOfCards
	RulePlayerMustNeverWin
)

func (k RuleKind) String() string {
	switch k {
	case RulePlayerMustWinCard:
		return "player_must_win_card"
	case RuleNeverWinWithRank:
		return "never_win_with_rank"
	case RuleWinOnceWithRank:
		return "win_once_with_rank"
	case RuleMustWinAllOfCards:
		return "must_win_all_of_cards"
	case RulePlayerMustNeverWin:
		return "player_must_never_win"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// Rule is a mission objective. Only the fields used by its Kind are set, so two
// rules with the same parameters compare equal and act as the same map key.
//
// Rules hold no state of their own: every evaluation is derived from the history.
type Rule struct {
	Kind   RuleKind
	Player PlayerID
	Card   Card
	Rank   int
	Cards  CardSet
}

// PlayerMustWinCard requires player to win the round in which card is played.
func PlayerMustWinCard(player PlayerID, card Card) Rule {
	return Rule{Kind: RulePlayerMustWinCard, Player: player, Card: card}
}

// NeverWinWithRank forbids any round from being won by a card of rank.
func NeverWinWithRank(rank int) Rule {
	return Rule{Kind: RuleNeverWinWithRank, Rank: rank}
}

// WinOnceWithRank requires at least one round to be won by a card of rank.
func WinOnceWithRank(rank int) Rule {
	return Rule{Kind: RuleWinOnceWithRank, Rank: rank}
}

// MustWinAllOfCards requires every card of the set to win a round.
func MustWinAllOfCards(cards CardSet) Rule {
	return Rule{Kind: RuleMustWinAllOfCards, Cards: cards}
}

// PlayerMustNeverWin forbids player from winning any round.
func PlayerMustNeverWin(player PlayerID) Rule {
	return Rule{Kind: RulePlayerMustNeverWin, Player: player}
}

func (r Rule) String() string {
	switch r.Kind {
	case RulePlayerMustWinCard:
		return fmt.Sprintf("player %d must win %s", r.Player, r.Card)
	case RuleNeverWinWithRank:
		return fmt.Sprintf("never win with a %d", r.Rank)
	case RuleWinOnceWithRank:
		return fmt.Sprintf("win once with a %d", r.Rank)
	case RuleMustWinAllOfCards:
		return fmt.Sprintf("win with all of %v", r.Cards.Cards())
	case RulePlayerMustNeverWin:
		return fmt.Sprintf("player %d must never win", r.Player)
	default:
		return r.Kind.String()
	}
}

// Satisfied reports whether the objective has been achieved.
func (r Rule) Satisfied(h *History) (bool, error) {
	switch r.Kind {
	case RulePlayerMustWinCard:
		last, err := h.Last()
		if err != nil {
			return false, err
		}
		if !last.Round.HasCard(r.Card) {
			return false, nil
		}
		return last.Winner.Player == r.Player, nil

	case RuleNeverWinWithRank:
		allPlayed := h.PlayedCards().Contains(CardsWithRank(r.Rank))
		if !h.Finished() && !allPlayed {
			return false, nil
		}
		return !h.WonWithRank(r.Rank), nil

	case RuleWinOnceWithRank:
		last, err := h.Last()
		if err != nil {
			return false, err
		}
		return last.Winner.Card.Rank == r.Rank, nil

	case RuleMustWinAllOfCards:
		return h.WinningCards().Contains(r.Cards), nil

	case RulePlayerMustNeverWin:
		return h.Finished() && !h.HasWon(r.Player), nil
	}
	return false, fmt.Errorf("%v: %w", r.Kind, ErrUnknownRule)
}

// Broken reports whether the objective can no longer be achieved.
func (r Rule) Broken(h *History) (bool, error) {
	switch r.Kind {
	case RulePlayerMustWinCard:
		last, err := h.Last()
		if err != nil {
			return false, err
		}
		if !last.Round.HasCard(r.Card) {
			return false, nil
		}
		return last.Winner.Player != r.Player, nil

	case RuleNeverWinWithRank:
		last, err := h.Last()
		if err != nil {
			return false, err
		}
		return last.Winner.Card.Rank == r.Rank, nil

	case RuleWinOnceWithRank:
		return h.Finished() && !h.WonWithRank(r.Rank), nil

	case RuleMustWinAllOfCards:
		return h.Finished() && !h.WinningCards().Contains(r.Cards), nil

	case RulePlayerMustNeverWin:
		return h.HasWon(r.Player), nil
	}
	return false, fmt.Errorf("%v: %w", r.Kind, ErrUnknownRule)
}
