package bot

import (
	"math/rand"
	"testing"

	"crew/internal/app"
	"crew/internal/bot/brain"
	"crew/internal/domain"
)

func card(s domain.Suit, r int) domain.Card { return domain.Card{Suit: s, Rank: r} }

// tableRound seats players 1..n and replays plays onto a fresh round.
func tableRound(t *testing.T, n int, plays ...domain.Play) *domain.Round {
	t.Helper()
	ids := make([]domain.PlayerID, n)
	for i := range ids {
		ids[i] = domain.PlayerID(i + 1)
	}
	r := domain.NewRound(ids)
	for _, p := range plays {
		if err := r.Play(p.Player, p.Card); err != nil {
			t.Fatalf("play %v: %v", p, err)
		}
	}
	return r
}

func holding(id domain.PlayerID, cards ...domain.Card) *domain.Player {
	p := domain.NewPlayer(id, "bot")
	for _, c := range cards {
		p.Receive(c)
	}
	return p
}

func TestGoodBotPlaysLowest(t *testing.T) {
	cases := []struct {
		name  string
		hand  []domain.Card
		plays []domain.Play
		want  domain.Card
	}{
		{
			name: "lead keeps rockets",
			hand: []domain.Card{card(domain.Rocket, 1), card(domain.Blue, 7), card(domain.Pink, 4)},
			want: card(domain.Pink, 4),
		},
		{
			name:  "follow suit",
			hand:  []domain.Card{card(domain.Blue, 1), card(domain.Green, 9), card(domain.Green, 6)},
			plays: []domain.Play{{Player: 1, Card: card(domain.Green, 2)}},
			want:  card(domain.Green, 6),
		},
		{
			name:  "void in led suit",
			hand:  []domain.Card{card(domain.Rocket, 2), card(domain.Yellow, 8)},
			plays: []domain.Play{{Player: 1, Card: card(domain.Green, 2)}},
			want:  card(domain.Yellow, 8),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := (&GoodBot{}).CalculateMove(holding(2, tc.hand...), tableRound(t, 3, tc.plays...))
			if err != nil {
				t.Fatalf("CalculateMove failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("played %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRandomBotPlaysLegalCards(t *testing.T) {
	b := &RandomBot{rng: rand.New(rand.NewSource(1))}
	player := holding(2, card(domain.Blue, 1), card(domain.Green, 9), card(domain.Green, 6))
	round := tableRound(t, 3, domain.Play{Player: 1, Card: card(domain.Green, 2)})
	for i := 0; i < 20; i++ {
		got, err := b.CalculateMove(player, round)
		if err != nil {
			t.Fatalf("CalculateMove failed: %v", err)
		}
		if got.Suit != domain.Green {
			t.Fatalf("played %s while holding green", got)
		}
	}
}

func TestBotsRejectEmptyHand(t *testing.T) {
	for _, b := range []Brain{&GoodBot{}, &SmartBot{}, &RandomBot{rng: rand.New(rand.NewSource(1))}} {
		if _, err := b.CalculateMove(holding(1), tableRound(t, 2)); err == nil {
			t.Fatalf("%T: expected error for empty hand", b)
		}
	}
}

func TestSmartBotWinsOwnMission(t *testing.T) {
	b := &SmartBot{Memory: brain.NewMemory()}
	b.OnEvent(app.Event{Kind: app.EventMissionAssigned, Payload: app.MissionAssignedPayload{
		Mission: domain.PlayerMustWinCard(2, card(domain.Pink, 3)),
	}})

	player := holding(2, card(domain.Pink, 5), card(domain.Pink, 9), card(domain.Blue, 1))
	round := tableRound(t, 3, domain.Play{Player: 1, Card: card(domain.Pink, 3)})
	got, err := b.CalculateMove(player, round)
	if err != nil {
		t.Fatalf("CalculateMove failed: %v", err)
	}
	if got != card(domain.Pink, 5) {
		t.Fatalf("played %s, want the cheapest winner PINK_5", got)
	}
}

func TestSmartBotDucksTeammateMission(t *testing.T) {
	b := &SmartBot{Memory: brain.NewMemory()}
	b.OnEvent(app.Event{Kind: app.EventMissionAssigned, Payload: app.MissionAssignedPayload{
		Mission: domain.PlayerMustWinCard(1, card(domain.Pink, 3)),
	}})

	player := holding(2, card(domain.Pink, 2), card(domain.Pink, 9))
	round := tableRound(t, 3, domain.Play{Player: 1, Card: card(domain.Pink, 3)})
	got, err := b.CalculateMove(player, round)
	if err != nil {
		t.Fatalf("CalculateMove failed: %v", err)
	}
	if got != card(domain.Pink, 2) {
		t.Fatalf("played %s, want PINK_2 to leave the trick to player 1", got)
	}
}

func TestSmartBotLeadsBossMissionCard(t *testing.T) {
	b := &SmartBot{Memory: brain.NewMemory()}
	b.OnEvent(app.Event{Kind: app.EventMissionAssigned, Payload: app.MissionAssignedPayload{
		Mission: domain.PlayerMustWinCard(1, card(domain.Yellow, 9)),
	}})

	player := holding(1, card(domain.Blue, 2), card(domain.Yellow, 9))
	got, err := b.CalculateMove(player, tableRound(t, 3))
	if err != nil {
		t.Fatalf("CalculateMove failed: %v", err)
	}
	if got != card(domain.Yellow, 9) {
		t.Fatalf("led %s, want YELLOW_9", got)
	}
}

func TestSmartBotNeverWinPlayerDucks(t *testing.T) {
	b := &SmartBot{Memory: brain.NewMemory()}
	b.OnEvent(app.Event{Kind: app.EventMissionAssigned, Payload: app.MissionAssignedPayload{
		Mission: domain.PlayerMustNeverWin(2),
	}})

	player := holding(2, card(domain.Green, 1), card(domain.Green, 8))
	round := tableRound(t, 3, domain.Play{Player: 1, Card: card(domain.Green, 4)})
	got, err := b.CalculateMove(player, round)
	if err != nil {
		t.Fatalf("CalculateMove failed: %v", err)
	}
	if got != card(domain.Green, 1) {
		t.Fatalf("played %s, want GREEN_1", got)
	}
}

func TestNewBrain(t *testing.T) {
	for _, level := range []BotLevel{BotLevelRandom, BotLevelGood, BotLevelSmart} {
		if _, err := NewBrain(level, nil); err != nil {
			t.Fatalf("%s: %v", level, err)
		}
	}
	if _, err := NewBrain(BotLevel(9), nil); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]BotLevel{"easy": BotLevelRandom, "Medium": BotLevelGood, "hard": BotLevelSmart, "smart": BotLevelSmart, "": BotLevelSmart}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseLevel("godlike"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
