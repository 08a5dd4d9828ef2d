package report

import "hoopfame/internal"

// famePlayerNames restricts the inductee list to category "Player" and
// returns the name membership set used by every join.
func famePlayerNames(inductees []internal.InducteeRecord) map[string]struct{} {
	out := map[string]struct{}{}
	for _, rec := range inductees {
		if rec.Category == "Player" {
			out[rec.Name] = struct{}{}
		}
	}
	return out
}

// filterPlayers keeps biography rows whose name is in the inductee set.
// Unmatched rows are silently excluded; this is an inner-join filter, not
// validation.
func filterPlayers(rows []internal.PlayerRecord, names map[string]struct{}) []internal.PlayerRecord {
	out := make([]internal.PlayerRecord, 0)
	for _, row := range rows {
		if _, ok := names[row.Name]; ok {
			out = append(out, row)
		}
	}
	return out
}

func filterStats(rows []internal.SeasonStatRecord, names map[string]struct{}) []internal.SeasonStatRecord {
	out := make([]internal.SeasonStatRecord, 0)
	for _, row := range rows {
		if _, ok := names[row.Player]; ok {
			out = append(out, row)
		}
	}
	return out
}

// missingFromDataset returns inductee "Player" names with no entry in the
// table's name set, in inductee-list order.
func missingFromDataset(inductees []internal.InducteeRecord, tableNames map[string]struct{}) []string {
	out := []string{}
	for _, rec := range inductees {
		if rec.Category != "Player" {
			continue
		}
		if _, ok := tableNames[rec.Name]; !ok {
			out = append(out, rec.Name)
		}
	}
	return out
}

// MissingHallOfFame lists inductees absent from the biography table and
// from the stats table side by side. Column order is fixed
// (player_dataset, stats_dataset); the shorter column is padded with nil.
func (s *Statistics) MissingHallOfFame() []internal.MissingReportRow {
	playerNames := map[string]struct{}{}
	for _, p := range s.Players {
		playerNames[p.Name] = struct{}{}
	}
	statNames := map[string]struct{}{}
	for _, row := range s.Stats {
		statNames[row.Player] = struct{}{}
	}

	noPlayers := missingFromDataset(s.Fame, playerNames)
	noStats := missingFromDataset(s.Fame, statNames)

	n := len(noPlayers)
	if len(noStats) > n {
		n = len(noStats)
	}
	rows := make([]internal.MissingReportRow, n)
	for i := range rows {
		if i < len(noPlayers) {
			v := noPlayers[i]
			rows[i].PlayerDataset = &v
		}
		if i < len(noStats) {
			v := noStats[i]
			rows[i].StatsDataset = &v
		}
	}
	return rows
}
