package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"hoopfame/internal/config"
	"hoopfame/internal/fame"
	"hoopfame/internal/report"
	"hoopfame/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	must(err)
	defer func() { _ = logger.Sync() }()

	cmd := os.Args[1]
	switch cmd {
	case "load":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		stats, err := report.Load(context.Background(), cfg, report.WithLogger(logger), report.WithStore(db))
		must(err)
		fmt.Printf("load complete inductees=%d players=%d stats=%d playersFame=%d statsFame=%d\n",
			len(stats.Fame), len(stats.Players), len(stats.Stats), len(stats.PlayersFame), len(stats.StatsFame))
	case "fame:sync":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		resolver := fame.NewResolver(cfg, fame.WithLogger(logger))
		inductees, source, err := resolver.Resolve(context.Background())
		must(err)
		must(db.ReplaceInductees(inductees, string(source)))
		fmt.Printf("fame sync complete source=%s inductees=%d\n", source, len(inductees))
	case "report:missing":
		stats, err := report.Load(context.Background(), cfg, report.WithLogger(logger))
		must(err)
		rows := stats.MissingHallOfFame()
		fmt.Printf("%-30s %s\n", "player_dataset", "stats_dataset")
		for _, row := range rows {
			fmt.Printf("%-30s %s\n", deref(row.PlayerDataset), deref(row.StatsDataset))
		}
	case "export:missing":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", filepath.Join(cfg.OutputDir, "missing.xlsx"), "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		stats, err := report.Load(context.Background(), cfg, report.WithLogger(logger))
		must(err)
		rows := stats.MissingHallOfFame()
		must(report.ExportMissingXLSX(rows, *out))
		fmt.Printf("exported %d rows to %s\n", len(rows), *out)
	case "export:summary":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", filepath.Join(cfg.OutputDir, "summary.xlsx"), "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		stats, err := report.Load(context.Background(), cfg, report.WithLogger(logger))
		must(err)
		must(report.ExportSummaryXLSX(stats.CategoryCounts(), stats.CareerSummaries(), *out))
		fmt.Printf("exported summary to %s\n", *out)
	default:
		usage()
		os.Exit(1)
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func usage() {
	fmt.Println("usage: hoopfame <command>")
	fmt.Println("commands:")
	fmt.Println("  load")
	fmt.Println("  fame:sync")
	fmt.Println("  report:missing")
	fmt.Println("  export:missing [--out=./out/missing.xlsx]")
	fmt.Println("  export:summary [--out=./out/summary.xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
