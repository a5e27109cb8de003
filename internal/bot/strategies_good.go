package bot

import (
	"crew/internal/app"
	"crew/internal/domain"
)

// GoodBot always gets rid of its lowest legal card, keeping rockets for last.
type GoodBot struct{}

func (b *GoodBot) CalculateMove(player *domain.Player, round *domain.Round) (domain.Card, error) {
	options, err := legalCards(player, round)
	if err != nil {
		return domain.Card{}, err
	}
	return options[0], nil
}

func (b *GoodBot) OnEvent(app.Event) {}
