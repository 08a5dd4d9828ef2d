package internal

import "time"

// InducteeRecord is one Hall of Fame entry. Category is an open set of
// strings ("Player", "Coach", "Contributor", ...); it is empty when the
// source row carried none.
type InducteeRecord struct {
	Name     string
	Category string
}

// PlayerRecord is one row of the player biography table, keyed by date of
// birth. The source stores only a birth year; Born is January 1st of it.
type PlayerRecord struct {
	Born       time.Time
	Name       string
	Height     *float64
	Weight     *float64
	College    *string
	BirthCity  *string
	BirthState *string
}

// SeasonStatRecord is one (player, season) row of the season statistics
// table, keyed by the season start date. Whole-count fields are integers;
// rate and percentage fields are nullable floats since early seasons lack
// many of them.
type SeasonStatRecord struct {
	Season time.Time
	Player string

	Position *string
	Age      *float64
	Team     *string

	Games         int64
	GamesStarted  *float64
	MinutesPlayed *float64

	EfficiencyRating      *float64
	TrueShootingPct       *float64
	ThreePointAttemptRate *float64
	FreeThrowRate         *float64
	OffensiveReboundPct   *float64
	DefensiveReboundPct   *float64
	TotalReboundPct       *float64
	AssistPct             *float64
	StealPct              *float64
	BlockPct              *float64
	TurnoverPct           *float64
	UsagePct              *float64

	OffensiveWinShares *float64
	DefensiveWinShares *float64
	WinShares          *float64
	WinSharesPer48     *float64

	OffensiveBoxPlusMinus *float64
	DefensiveBoxPlusMinus *float64
	BoxPlusMinus          *float64
	ValueOverReplacement  *float64

	FieldGoals        int64
	FieldGoalAttempts int64
	FieldGoalPct      *float64

	ThreePointers      *float64
	ThreePointAttempts *float64
	ThreePointPct      *float64

	TwoPointers      int64
	TwoPointAttempts int64
	TwoPointPct      *float64

	EffectiveFieldGoalPct *float64

	FreeThrows        int64
	FreeThrowAttempts int64
	FreeThrowPct      *float64

	OffensiveRebounds *float64
	DefensiveRebounds *float64
	TotalRebounds     *float64
	Assists           *float64
	Steals            *float64
	Blocks            *float64
	Turnovers         *float64

	Fouls  int64
	Points int64
}

// MissingReportRow pairs inductees absent from the biography table with
// inductees absent from the stats table. The shorter column is padded with
// nil so both columns have equal length.
type MissingReportRow struct {
	PlayerDataset *string
	StatsDataset  *string
}

// CategoryCount is the per-category inductee tally the bar chart consumes.
type CategoryCount struct {
	Category string
	Count    int
}

// CareerSummary aggregates a Hall of Fame player's seasons.
type CareerSummary struct {
	Player          string
	Seasons         int
	Games           int64
	Points          int64
	MedianSeasonPts *float64
	MeanEfficiency  *float64
	PeakEfficiency  *float64
	TotalWinShares  *float64
}
