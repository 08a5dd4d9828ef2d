// Package report is the umbrella over the cleaned tables: it resolves the
// Hall of Fame inductee list, loads both datasets, and exposes the
// fame-filtered views and the missing-inductee diff to callers.
package report

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"hoopfame/internal"
	"hoopfame/internal/config"
	"hoopfame/internal/dataset"
	"hoopfame/internal/fame"
	"hoopfame/internal/storage"
)

// Statistics holds the loaded tables as read-only in-memory state for the
// rest of the process. All fields are populated by Load; callers never
// observe a half-initialized value.
type Statistics struct {
	Fame        []internal.InducteeRecord
	Players     []internal.PlayerRecord
	Stats       []internal.SeasonStatRecord
	PlayersFame []internal.PlayerRecord
	StatsFame   []internal.SeasonStatRecord

	cfg      config.Config
	log      *zap.Logger
	resolver *fame.Resolver
	store    *storage.DB
}

type Option func(*Statistics)

func WithLogger(l *zap.Logger) Option {
	return func(s *Statistics) { s.log = l }
}

func WithResolver(r *fame.Resolver) Option {
	return func(s *Statistics) { s.resolver = r }
}

// WithStore enables run auditing: after a successful load the resolved
// inductee snapshot and the run counts are recorded. Audit failures are
// logged, not fatal; the store never feeds back into resolution.
func WithStore(db *storage.DB) Option {
	return func(s *Statistics) { s.store = db }
}

// Load runs the whole pipeline: resolve inductees, read and clean both
// tables, derive the fame-filtered views. Any failure aborts the load;
// there is no partial or degraded mode.
func Load(ctx context.Context, cfg config.Config, opts ...Option) (*Statistics, error) {
	s := &Statistics{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = fame.NewResolver(cfg, fame.WithLogger(s.log))
	}

	start := time.Now()

	inductees, source, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	s.Fame = inductees

	players, err := s.loadPlayers()
	if err != nil {
		return nil, fmt.Errorf("players table: %w", err)
	}
	s.Players = players
	s.log.Debug("players dataset loaded", zap.Int("rows", len(players)))

	seasonStats, err := s.loadSeasonStats()
	if err != nil {
		return nil, fmt.Errorf("season stats table: %w", err)
	}
	s.Stats = seasonStats
	s.log.Debug("season stats dataset loaded", zap.Int("rows", len(seasonStats)))

	names := famePlayerNames(s.Fame)
	s.PlayersFame = filterPlayers(s.Players, names)
	s.StatsFame = filterStats(s.Stats, names)

	s.recordRun(source, time.Since(start))
	return s, nil
}

func (s *Statistics) loadPlayers() ([]internal.PlayerRecord, error) {
	f, err := os.Open(s.cfg.PlayersFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadPlayers(f)
}

func (s *Statistics) loadSeasonStats() ([]internal.SeasonStatRecord, error) {
	raw, err := os.ReadFile(s.cfg.SeasonStatsFile)
	if err != nil {
		return nil, err
	}
	text := dataset.StripArtifactLines(string(raw))
	return dataset.ReadSeasonStats(strings.NewReader(text))
}

func (s *Statistics) recordRun(source fame.Source, elapsed time.Duration) {
	if s.store == nil {
		return
	}
	counts := map[string]int{
		"inductees":   len(s.Fame),
		"players":     len(s.Players),
		"stats":       len(s.Stats),
		"playersFame": len(s.PlayersFame),
		"statsFame":   len(s.StatsFame),
	}
	timings := map[string]float64{"totalMs": float64(elapsed.Milliseconds())}
	if err := s.store.InsertRun(traceID(), counts, timings); err != nil {
		s.log.Warn("run audit insert failed", zap.Error(err))
	}
	if err := s.store.ReplaceInductees(s.Fame, string(source)); err != nil {
		s.log.Warn("inductee snapshot failed", zap.Error(err))
	}
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
