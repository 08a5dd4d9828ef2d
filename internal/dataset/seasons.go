package dataset

import (
	"io"

	"hoopfame/internal"
	"hoopfame/internal/clean"
)

// SeasonStatsSchema mirrors the season statistics CSV column order.
// blank_1 and blank_2 are spacer columns that hold no data in any row of
// the source export; they are parsed for alignment and then discarded.
var SeasonStatsSchema = Schema{
	Columns: []Column{
		{Name: "idx", Kind: KindInt, Counter: true},
		{Name: "season", Kind: KindDate, Key: true},
		{Name: "player", Kind: KindString},
		{Name: "position", Kind: KindCategory},
		{Name: "age", Kind: KindFloat},
		{Name: "team", Kind: KindCategory},
		{Name: "games", Kind: KindInt},
		{Name: "games_started", Kind: KindFloat},
		{Name: "minutes_played", Kind: KindFloat},
		{Name: "efficiency_rating", Kind: KindFloat},
		{Name: "true_shooting_pct", Kind: KindFloat},
		{Name: "3_point_attempt_rate", Kind: KindFloat},
		{Name: "free_throw_rate", Kind: KindFloat},
		{Name: "offensive_rebound_pct", Kind: KindFloat},
		{Name: "defensive_rebound_pct", Kind: KindFloat},
		{Name: "total_rebound_pct", Kind: KindFloat},
		{Name: "assist_pct", Kind: KindFloat},
		{Name: "steal_pct", Kind: KindFloat},
		{Name: "block_pct", Kind: KindFloat},
		{Name: "turnover_pct", Kind: KindFloat},
		{Name: "usage_pct", Kind: KindFloat},
		{Name: "blank_1", Kind: KindString},
		{Name: "offensive_win_shares", Kind: KindFloat},
		{Name: "defensive_win_shares", Kind: KindFloat},
		{Name: "win_shares", Kind: KindFloat},
		{Name: "win_shares_48", Kind: KindFloat},
		{Name: "blank_2", Kind: KindString},
		{Name: "offensive_box_plus_minus", Kind: KindFloat},
		{Name: "defensive_box_plus_minus", Kind: KindFloat},
		{Name: "box_plus_minus", Kind: KindFloat},
		{Name: "value_over_replacement", Kind: KindFloat},
		{Name: "field_goals", Kind: KindInt},
		{Name: "field_goal_attempts", Kind: KindInt},
		{Name: "field_goal_pct", Kind: KindFloat},
		{Name: "3_pointers", Kind: KindFloat},
		{Name: "3_pointer_attempts", Kind: KindFloat},
		{Name: "3_pointer_pct", Kind: KindFloat},
		{Name: "2_pointers", Kind: KindInt},
		{Name: "2_pointer_attempts", Kind: KindInt},
		{Name: "2_pointer_pct", Kind: KindFloat},
		{Name: "effective_field_goal_pct", Kind: KindFloat},
		{Name: "free_throws", Kind: KindInt},
		{Name: "free_throw_attempts", Kind: KindInt},
		{Name: "free_throw_pct", Kind: KindFloat},
		{Name: "offensive_rebounds", Kind: KindFloat},
		{Name: "defensive_rebounds", Kind: KindFloat},
		{Name: "total_rebounds", Kind: KindFloat},
		{Name: "assists", Kind: KindFloat},
		{Name: "steals", Kind: KindFloat},
		{Name: "blocks", Kind: KindFloat},
		{Name: "turnovers", Kind: KindFloat},
		{Name: "fouls", Kind: KindInt},
		{Name: "points", Kind: KindInt},
	},
}

// ReadSeasonStats loads the season statistics table. The caller is expected
// to run StripArtifactLines over the raw file text first; after that every
// remaining row must parse, so the output row count equals the input row
// count.
func ReadSeasonStats(r io.Reader) ([]internal.SeasonStatRecord, error) {
	rows, err := Read(r, SeasonStatsSchema)
	if err != nil {
		return nil, err
	}

	out := make([]internal.SeasonStatRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, internal.SeasonStatRecord{
			Season: row.Date("season"),
			Player: clean.StripMarker(row.Str("player")),

			Position: row.StrPtr("position"),
			Age:      row.FloatPtr("age"),
			Team:     row.StrPtr("team"),

			Games:         row.Int("games"),
			GamesStarted:  row.FloatPtr("games_started"),
			MinutesPlayed: row.FloatPtr("minutes_played"),

			EfficiencyRating:      row.FloatPtr("efficiency_rating"),
			TrueShootingPct:       row.FloatPtr("true_shooting_pct"),
			ThreePointAttemptRate: row.FloatPtr("3_point_attempt_rate"),
			FreeThrowRate:         row.FloatPtr("free_throw_rate"),
			OffensiveReboundPct:   row.FloatPtr("offensive_rebound_pct"),
			DefensiveReboundPct:   row.FloatPtr("defensive_rebound_pct"),
			TotalReboundPct:       row.FloatPtr("total_rebound_pct"),
			AssistPct:             row.FloatPtr("assist_pct"),
			StealPct:              row.FloatPtr("steal_pct"),
			BlockPct:              row.FloatPtr("block_pct"),
			TurnoverPct:           row.FloatPtr("turnover_pct"),
			UsagePct:              row.FloatPtr("usage_pct"),

			OffensiveWinShares: row.FloatPtr("offensive_win_shares"),
			DefensiveWinShares: row.FloatPtr("defensive_win_shares"),
			WinShares:          row.FloatPtr("win_shares"),
			WinSharesPer48:     row.FloatPtr("win_shares_48"),

			OffensiveBoxPlusMinus: row.FloatPtr("offensive_box_plus_minus"),
			DefensiveBoxPlusMinus: row.FloatPtr("defensive_box_plus_minus"),
			BoxPlusMinus:          row.FloatPtr("box_plus_minus"),
			ValueOverReplacement:  row.FloatPtr("value_over_replacement"),

			FieldGoals:        row.Int("field_goals"),
			FieldGoalAttempts: row.Int("field_goal_attempts"),
			FieldGoalPct:      row.FloatPtr("field_goal_pct"),

			ThreePointers:      row.FloatPtr("3_pointers"),
			ThreePointAttempts: row.FloatPtr("3_pointer_attempts"),
			ThreePointPct:      row.FloatPtr("3_pointer_pct"),

			TwoPointers:      row.Int("2_pointers"),
			TwoPointAttempts: row.Int("2_pointer_attempts"),
			TwoPointPct:      row.FloatPtr("2_pointer_pct"),

			EffectiveFieldGoalPct: row.FloatPtr("effective_field_goal_pct"),

			FreeThrows:        row.Int("free_throws"),
			FreeThrowAttempts: row.Int("free_throw_attempts"),
			FreeThrowPct:      row.FloatPtr("free_throw_pct"),

			OffensiveRebounds: row.FloatPtr("offensive_rebounds"),
			DefensiveRebounds: row.FloatPtr("defensive_rebounds"),
			TotalRebounds:     row.FloatPtr("total_rebounds"),
			Assists:           row.FloatPtr("assists"),
			Steals:            row.FloatPtr("steals"),
			Blocks:            row.FloatPtr("blocks"),
			Turnovers:         row.FloatPtr("turnovers"),

			Fouls:  row.Int("fouls"),
			Points: row.Int("points"),
		})
	}
	return out, nil
}
