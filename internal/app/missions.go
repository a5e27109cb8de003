package app

import (
	"fmt"
	"sort"

	"crew/internal/domain"
)

// Missions is the rule set of a level together with its ordering constraints.
type Missions struct {
	Rules []domain.Rule
	Order domain.OrderConstraints
}

// MissionRuleListBuilder turns a level definition into mission rules.
type MissionRuleListBuilder struct {
	selector SetupSelector
}

// NewMissionRuleListBuilder returns a builder that asks selector for player choices.
func NewMissionRuleListBuilder(selector SetupSelector) *MissionRuleListBuilder {
	return &MissionRuleListBuilder{selector: selector}
}

// Build creates the missions of level. Card missions are handed out first, in
// the order of missionCards, and receive the level's order tokens in that order.
// Each static mission type yields one rule, so LAST resolves against the tracked count.
func (b *MissionRuleListBuilder) Build(players []*domain.Player, level LevelDefinition, missionCards []domain.Card) (Missions, error) {
	if len(missionCards) != level.CardMissionCount() {
		return Missions{}, fmt.Errorf("got %d cards, level %d needs %d: %w", len(missionCards), level.Number, level.CardMissionCount(), ErrMissionCards)
	}

	var rules []domain.Rule
	cardRules, err := b.distributeCards(players, missionCards)
	if err != nil {
		return Missions{}, err
	}
	rules = append(rules, cardRules...)

	for _, m := range level.Missions {
		if m.Type == MissionPlayerHasToWinCard {
			continue
		}
		rule, err := b.staticRule(players, m.Type, level.Metadata)
		if err != nil {
			return Missions{}, err
		}
		if !containsRule(rules, rule) {
			rules = append(rules, rule)
		}
	}

	order, err := orderFromTokens(level.OrderTokens, cardRules, len(rules))
	if err != nil {
		return Missions{}, err
	}
	return Missions{Rules: rules, Order: order}, nil
}

func (b *MissionRuleListBuilder) staticRule(players []*domain.Player, t MissionType, meta MissionMetadata) (domain.Rule, error) {
	switch t {
	case MissionNeverWinWithNumber:
		if !validRank(meta.NeverWinNumber) {
			return domain.Rule{}, fmt.Errorf("never win with %d: %w", meta.NeverWinNumber, ErrMissionRank)
		}
		return domain.NeverWinWithRank(meta.NeverWinNumber), nil
	case MissionWinOnceWithNumber:
		if !validRank(meta.WinOnceNumber) {
			return domain.Rule{}, fmt.Errorf("win once with %d: %w", meta.WinOnceNumber, ErrMissionRank)
		}
		return domain.WinOnceWithRank(meta.WinOnceNumber), nil
	case MissionWinWithAllTheseCards:
		cards, err := parseCards(meta.CardsToWin)
		if err != nil {
			return domain.Rule{}, err
		}
		return domain.MustWinAllOfCards(cards), nil
	case MissionPlayerShouldNeverWin:
		p, err := b.selector.SelectPlayerThatShouldNotWin(players)
		if err != nil {
			return domain.Rule{}, fmt.Errorf("select player that should not win: %w", err)
		}
		if p == nil || indexOf(players, p.ID) < 0 {
			return domain.Rule{}, fmt.Errorf("never-win player: %w", ErrInvalidSelection)
		}
		return domain.PlayerMustNeverWin(p.ID), nil
	}
	return domain.Rule{}, fmt.Errorf("%q: %w", t, ErrUnsupportedMission)
}

func containsRule(rules []domain.Rule, r domain.Rule) bool {
	for _, x := range rules {
		if x == r {
			return true
		}
	}
	return false
}

// distributeCards lets players pick card missions round-robin. A player may skip
// only while the players after them in this lap can still take every remaining card.
func (b *MissionRuleListBuilder) distributeCards(players []*domain.Player, cards []domain.Card) ([]domain.Rule, error) {
	remaining := append([]domain.Card(nil), cards...)
	rules := make([]domain.Rule, 0, len(cards))

	for i := 0; len(remaining) > 0; i = (i + 1) % len(players) {
		player := players[i]
		canSkip := len(players)-(i+1) >= len(remaining)

		card, ok, err := b.selector.SelectMission(player.ID, remaining, canSkip)
		if err != nil {
			return nil, fmt.Errorf("select mission for %s: %w", player, err)
		}
		if !ok {
			if !canSkip {
				return nil, fmt.Errorf("%s: %w", player, ErrIllegalSkip)
			}
			continue
		}

		idx := -1
		for j, c := range remaining {
			if c == card {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("mission card %s: %w", card, ErrInvalidSelection)
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		rules = append(rules, domain.PlayerMustWinCard(player.ID, card))
	}
	return rules, nil
}

// orderFromTokens maps tokens onto card missions: absolute tokens fix a success
// position and relative tokens chain their missions in token rank.
func orderFromTokens(tokens []OrderToken, cardRules []domain.Rule, missionCount int) (domain.OrderConstraints, error) {
	if len(tokens) == 0 {
		return domain.EmptyOrder(), nil
	}
	if len(tokens) > len(cardRules) {
		return domain.OrderConstraints{}, fmt.Errorf("%d tokens for %d missions: %w", len(tokens), len(cardRules), ErrTooManyOrderTokens)
	}

	type ranked struct {
		rank int
		rule domain.Rule
	}
	var chain []ranked
	b := domain.NewOrderBuilder()
	for i, t := range tokens {
		if pos, ok := t.absolutePosition(missionCount); ok {
			b.FixedPosition(cardRules[i], pos)
			continue
		}
		if rank, ok := t.relativeRank(); ok {
			chain = append(chain, ranked{rank: rank, rule: cardRules[i]})
			continue
		}
		return domain.OrderConstraints{}, fmt.Errorf("%q: %w", t, ErrUnknownOrderToken)
	}

	sort.SliceStable(chain, func(i, j int) bool { return chain[i].rank < chain[j].rank })
	for i := 1; i < len(chain); i++ {
		b.Before(chain[i-1].rule, chain[i].rule)
	}
	return b.Build(), nil
}
