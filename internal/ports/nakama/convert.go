package nakama

import (
	"crew/internal/app"
	"crew/internal/domain"

	"google.golang.org/protobuf/types/known/structpb"
)

func cardsToList(cards []domain.Card) []any {
	out := make([]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func ruleToMap(r domain.Rule) map[string]any {
	m := map[string]any{
		"kind":        r.Kind.String(),
		"description": r.String(),
	}
	switch r.Kind {
	case domain.RulePlayerMustWinCard:
		m["player"] = int64(r.Player)
		m["card"] = r.Card.String()
	case domain.RulePlayerMustNeverWin:
		m["player"] = int64(r.Player)
	case domain.RuleNeverWinWithRank, domain.RuleWinOnceWithRank:
		m["rank"] = int64(r.Rank)
	case domain.RuleMustWinAllOfCards:
		m["cards"] = cardsToList(r.Cards.Cards())
	}
	return m
}

func rulesToList(rules []domain.Rule) []any {
	out := make([]any, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleToMap(r))
	}
	return out
}

func missionsToList(t *domain.Tracker) ([]any, error) {
	all := t.All()
	out := make([]any, 0, len(all))
	for _, r := range all {
		status, err := t.Status(r)
		if err != nil {
			return nil, err
		}
		m := ruleToMap(r)
		m["status"] = status.String()
		out = append(out, m)
	}
	return out, nil
}

// resultToStruct summarizes a finished playthrough for clients.
func resultToStruct(level app.LevelDefinition, res *app.Result) (*structpb.Struct, error) {
	missions, err := missionsToList(res.Tracker)
	if err != nil {
		return nil, err
	}

	players := make([]any, 0, len(res.Players))
	for _, p := range res.Players {
		players = append(players, map[string]any{
			"id":   int64(p.ID),
			"name": p.Name,
		})
	}

	rounds := make([]any, 0, res.History.Len())
	for i, cr := range res.History.Rounds() {
		plays := make([]any, 0, len(cr.Round.Plays()))
		for _, p := range cr.Round.Plays() {
			plays = append(plays, map[string]any{
				"player": int64(p.Player),
				"card":   p.Card.String(),
			})
		}
		rounds = append(rounds, map[string]any{
			"number": int64(i + 1),
			"plays":  plays,
			"winner": int64(cr.Winner.Player),
			"card":   cr.Winner.Card.String(),
		})
	}

	return structpb.NewStruct(map[string]any{
		"level":         int64(level.Number),
		"outcome":       res.Outcome.String(),
		"phase":         string(res.Phase),
		"rounds_played": int64(res.History.Len()),
		"total_rounds":  int64(res.History.TotalRounds()),
		"players":       players,
		"missions":      missions,
		"succeeded":     rulesToList(res.Tracker.Succeeded()),
		"failed":        rulesToList(res.Tracker.Failed()),
		"rounds":        rounds,
	})
}

func levelsToStruct(levels []app.LevelDefinition) (*structpb.Struct, error) {
	out := make([]any, 0, len(levels))
	for _, l := range levels {
		tokens := make([]any, 0, len(l.OrderTokens))
		for _, t := range l.OrderTokens {
			tokens = append(tokens, string(t))
		}
		missions := make([]any, 0, len(l.Missions))
		for _, m := range l.Missions {
			missions = append(missions, map[string]any{
				"type":  string(m.Type),
				"count": int64(m.Count),
			})
		}
		out = append(out, map[string]any{
			"number":        int64(l.Number),
			"card_missions": int64(l.CardMissionCount()),
			"order_tokens":  tokens,
			"missions":      missions,
			"communication": string(l.Communication),
		})
	}
	return structpb.NewStruct(map[string]any{"levels": out})
}
