package report

import (
	"sort"

	mstats "github.com/montanaflynn/stats"

	"hoopfame/internal"
)

// CategoryCounts tallies inductees per category, ascending by count with
// ties broken alphabetically. This is the series the category bar chart
// renders.
func (s *Statistics) CategoryCounts() []internal.CategoryCount {
	tally := map[string]int{}
	for _, rec := range s.Fame {
		tally[rec.Category]++
	}

	out := make([]internal.CategoryCount, 0, len(tally))
	for category, count := range tally {
		out = append(out, internal.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count < out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CareerSummaries aggregates each Hall of Fame player's seasons, ordered
// by player name. Rate statistics missing from early seasons are simply
// left out of the aggregates.
func (s *Statistics) CareerSummaries() []internal.CareerSummary {
	byPlayer := map[string][]internal.SeasonStatRecord{}
	for _, row := range s.StatsFame {
		byPlayer[row.Player] = append(byPlayer[row.Player], row)
	}
	players := make([]string, 0, len(byPlayer))
	for player := range byPlayer {
		players = append(players, player)
	}
	sort.Strings(players)

	out := make([]internal.CareerSummary, 0, len(players))
	for _, player := range players {
		seasons := byPlayer[player]
		summary := internal.CareerSummary{Player: player, Seasons: len(seasons)}

		var seasonPts, per, winShares []float64
		for _, row := range seasons {
			summary.Games += row.Games
			summary.Points += row.Points
			seasonPts = append(seasonPts, float64(row.Points))
			if row.EfficiencyRating != nil {
				per = append(per, *row.EfficiencyRating)
			}
			if row.WinShares != nil {
				winShares = append(winShares, *row.WinShares)
			}
		}

		if v, err := mstats.Median(seasonPts); err == nil {
			summary.MedianSeasonPts = &v
		}
		if v, err := mstats.Mean(per); err == nil {
			summary.MeanEfficiency = &v
		}
		if v, err := mstats.Max(per); err == nil {
			summary.PeakEfficiency = &v
		}
		if v, err := mstats.Sum(winShares); err == nil {
			summary.TotalWinShares = &v
		}

		out = append(out, summary)
	}
	return out
}
