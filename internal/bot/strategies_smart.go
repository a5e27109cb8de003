package bot

import (
	"crew/internal/app"
	"crew/internal/bot/brain"
	"crew/internal/domain"
)

// SmartBot counts cards and plays toward the open missions it has seen assigned.
type SmartBot struct {
	Memory *brain.GameMemory
}

func (b *SmartBot) CalculateMove(player *domain.Player, round *domain.Round) (domain.Card, error) {
	if b.Memory == nil {
		b.Memory = brain.NewMemory()
	}
	b.Memory.UpdateHand(player.Hand.Cards())
	b.Memory.MarkPlayed(round.PlayedCards().Cards())

	options, err := legalCards(player, round)
	if err != nil {
		return domain.Card{}, err
	}

	best, ok := leading(round)
	if !ok {
		return b.lead(player.ID, options), nil
	}

	var winners, losers []domain.Card
	for _, c := range options {
		if beats(c, best.Card) {
			winners = append(winners, c)
		} else {
			losers = append(losers, c)
		}
	}

	// A mission card of ours that takes the trick for good is played right away.
	for _, c := range winners {
		if owner, ok := b.Memory.MissionOwner(c); ok && owner == player.ID && b.Memory.IsBoss(c) && !b.Memory.MustNotWin(player.ID) {
			return c, nil
		}
	}

	switch b.wants(player.ID, round) {
	case wantWin:
		if len(winners) > 0 {
			return winners[0], nil
		}
	case wantLose:
		if len(losers) > 0 {
			return losers[0], nil
		}
	}
	if len(losers) > 0 {
		return losers[0], nil
	}
	return options[0], nil
}

type desire int

const (
	wantNothing desire = iota
	wantWin
	wantLose
)

// wants decides whether id should try to take the trick on the table.
func (b *SmartBot) wants(id domain.PlayerID, round *domain.Round) desire {
	if b.Memory.MustNotWin(id) {
		return wantLose
	}
	for _, p := range round.Plays() {
		owner, ok := b.Memory.MissionOwner(p.Card)
		if !ok {
			continue
		}
		if owner == id {
			return wantWin
		}
		return wantLose
	}
	return wantNothing
}

// lead opens a trick with one of our boss mission cards, or else the lowest card
// that is nobody's mission.
func (b *SmartBot) lead(id domain.PlayerID, options []domain.Card) domain.Card {
	for _, c := range options {
		if owner, ok := b.Memory.MissionOwner(c); ok && owner == id && b.Memory.IsBoss(c) && !c.Suit.IsTrump() {
			return c
		}
	}
	for _, c := range options {
		if _, ok := b.Memory.MissionOwner(c); !ok {
			return c
		}
	}
	return options[0]
}

func (b *SmartBot) OnEvent(event app.Event) {
	if b.Memory == nil {
		b.Memory = brain.NewMemory()
	}
	switch payload := event.Payload.(type) {
	case app.CardsDealtPayload:
		b.Memory.Reset()
		b.Memory.MarkMine(payload.Hand)
	case app.MissionAssignedPayload:
		b.Memory.RememberMission(payload.Mission)
	case app.MissionPayload:
		b.Memory.ForgetMission(payload.Mission)
	case app.CardPlayedPayload:
		b.Memory.MarkPlayed([]domain.Card{payload.Card})
	}
}
