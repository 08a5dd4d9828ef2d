package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir         string
	PlayersFile     string
	SeasonStatsFile string
	OutputDir       string
	DBPath          string

	FameCSVURL    string
	FameScrapeURL string
	FameSectionID string

	HTTPTimeoutMs int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	dataDir := getEnv("DATA_DIR", filepath.Join(cwd, "data"))

	cfg := Config{
		DataDir:         dataDir,
		PlayersFile:     getEnv("PLAYERS_FILE", filepath.Join(dataDir, "Players.csv")),
		SeasonStatsFile: getEnv("SEASON_STATS_FILE", filepath.Join(dataDir, "Seasons_Stats.csv")),
		OutputDir:       getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		DBPath:          getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		FameCSVURL:    getEnv("FAME_CSV_URL", "https://timothyhelton.github.io/assets/data/NBA_Hall_of_Fame.csv"),
		FameScrapeURL: getEnv("FAME_SCRAPE_URL", "http://www.nba.com/history/naismith-memorial-basketball-hall-of-fame-inductees/"),
		FameSectionID: getEnv("FAME_SECTION_ID", "nbaArticleContent"),

		HTTPTimeoutMs: getEnvInt("HTTP_TIMEOUT_MS", 30000),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
