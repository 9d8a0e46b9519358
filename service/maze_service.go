package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/google/uuid"
)

const (
	// hardestKey is the sorted set ranking maze IDs by path length.
	hardestKey = "mazes:hardest"

	defaultMaxBatch = 16
	maxListLimit    = 100
	defaultTokenTTL = 30 * 24 * time.Hour
)

// Replay token claim names
const (
	claimMazeID    = "mazeID"
	claimWidth     = "width"
	claimHeight    = "height"
	claimShape     = "shape"
	claimDiagonals = "diagonals"
	claimEnhancer  = "enhancer"
	claimStyle     = "style"
	claimSeed      = "seed" // decimal string; JSON numbers cannot hold every int64
	claimCreatedAt = "createdAt"
)

var _ i.MazeService = (*MazeService)(nil)

// Config holds the collaborators and limits of a MazeService.
type Config struct {
	Repo      i.MazeRepo
	Cache     i.MazeCache
	Ranking   i.SortedSet
	Tokenizer i.Tokenizer
	Logger    *slog.Logger
	Seed      int64         // Seeds the generator every maze seed is drawn from
	MaxBatch  int           // Largest number of mazes one request may ask for
	TokenTTL  time.Duration // Lifetime of replay tokens
}

// MazeService generates, stores and rebuilds mazes.
// Implements i.MazeService.
type MazeService struct {
	repo      i.MazeRepo
	cache     i.MazeCache
	ranking   i.SortedSet
	tokenizer i.Tokenizer
	logger    *slog.Logger
	maxBatch  int
	tokenTTL  time.Duration

	mu        sync.Mutex
	generator *maze.Generator
}

// NewMazeService creates a MazeService. Repo, Cache, Ranking and Tokenizer
// are required.
func NewMazeService(cfg Config) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Cache == nil || cfg.Ranking == nil || cfg.Tokenizer == nil {
		return nil, errors.New("maze service: repo, cache, ranking and tokenizer are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = defaultMaxBatch
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	return &MazeService{
		repo:      cfg.Repo,
		cache:     cfg.Cache,
		ranking:   cfg.Ranking,
		tokenizer: cfg.Tokenizer,
		logger:    cfg.Logger,
		maxBatch:  cfg.MaxBatch,
		tokenTTL:  cfg.TokenTTL,
		generator: maze.NewGenerator(cfg.Seed),
	}, nil
}

// Generate builds a batch of mazes, stores a record of each and warms the
// cache with the finished mazes. Batches are not atomic: when a maze fails,
// the mazes finished before it are returned together with the error and
// their records stay stored and ranked.
func (s *MazeService) Generate(ctx context.Context, req domain.GenerateRequest) ([]*domain.GeneratedMaze, error) {
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 0 || req.Count > s.maxBatch {
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", i.ErrInvalidBatch, req.Count, s.maxBatch)
	}
	opts, err := req.Options.Normalize()
	if err != nil {
		return nil, err
	}

	generated := make([]*domain.GeneratedMaze, 0, req.Count)
	for n := 0; n < req.Count; n++ {
		g, err := s.generateOne(ctx, opts)
		if err != nil {
			if len(generated) > 0 {
				s.logger.Warn("batch stopped early", "generated", len(generated), "requested", req.Count, "error", err)
			}
			return generated, fmt.Errorf("maze %d of %d: %w", n+1, req.Count, err)
		}
		generated = append(generated, g)
	}

	s.logger.Info("generated mazes", "count", len(generated), "shape", opts.Shape, "enhancer", opts.Enhancer)
	return generated, nil
}

// generateOne builds, stores, caches and ranks one maze.
func (s *MazeService) generateOne(ctx context.Context, opts maze.Options) (*domain.GeneratedMaze, error) {
	recipe := domain.NewRecipe(opts, s.nextSeed())
	m, err := s.build(recipe)
	if err != nil {
		return nil, err
	}

	record, err := domain.NewMazeRecord(uuid.New(), recipe, m)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze %s: %w", record.ID, err)
	}
	mazePathLength.Observe(float64(record.PathLength))

	if err := s.cache.Set(ctx, recipe.CacheKey(), m); err != nil {
		s.logger.Warn("caching maze failed", "id", record.ID, "error", err)
	}
	if err := s.ranking.Add(ctx, hardestKey, float64(record.PathLength), record.ID.String()); err != nil {
		s.logger.Warn("ranking maze failed", "id", record.ID, "error", err)
	} else {
		mazeRankingSize.Set(float64(s.ranking.Count(ctx, hardestKey)))
	}

	token, err := s.replayToken(record)
	if err != nil {
		return nil, err
	}
	return &domain.GeneratedMaze{Record: record, Maze: m, ReplayToken: token}, nil
}

// Replay rebuilds the maze a replay token was issued for. It needs neither
// the repository nor the original instance.
func (s *MazeService) Replay(ctx context.Context, token string) (*domain.GeneratedMaze, error) {
	claims, err := s.tokenizer.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", i.ErrInvalidReplayToken, err)
	}
	record, err := recordFromClaims(claims)
	if err != nil {
		return nil, err
	}

	m, err := s.materialize(ctx, record.Recipe)
	if err != nil {
		return nil, err
	}
	if err := s.fillSummary(record, m); err != nil {
		return nil, err
	}
	return &domain.GeneratedMaze{Record: record, Maze: m, ReplayToken: token}, nil
}

// ByID loads a stored maze and rebuilds it.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*domain.GeneratedMaze, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := s.materialize(ctx, record.Recipe)
	if err != nil {
		return nil, err
	}
	token, err := s.replayToken(record)
	if err != nil {
		return nil, err
	}
	return &domain.GeneratedMaze{Record: record, Maze: m, ReplayToken: token}, nil
}

// Recent lists the latest stored mazes, newest first.
func (s *MazeService) Recent(ctx context.Context, limit int64) ([]*domain.MazeRecord, error) {
	return s.repo.Recent(ctx, clampLimit(limit))
}

// Hardest lists stored mazes with the longest start to finish paths.
// Ranked IDs whose record is gone are skipped.
func (s *MazeService) Hardest(ctx context.Context, limit int64) ([]*domain.MazeRecord, error) {
	ids, err := s.ranking.Top(ctx, hardestKey, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	records := make([]*domain.MazeRecord, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("skipping malformed ranking entry", "member", raw)
			continue
		}
		record, err := s.repo.ByID(ctx, id)
		if errors.Is(err, i.ErrMazeNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *MazeService) nextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.NextSeed()
}

// build runs the maze pipeline and records its metrics.
func (s *MazeService) build(recipe domain.Recipe) (*maze.Maze, error) {
	start := time.Now()
	m, err := maze.Build(recipe.Options(), recipe.Seed)
	if err != nil {
		kind := "invariant"
		if maze.IsConfigurationError(err) {
			kind = "configuration"
		} else {
			s.logger.Error("maze build failed", "recipe", recipe.CacheKey(), "error", err)
		}
		mazeBuildFailures.WithLabelValues(kind).Inc()
		return nil, err
	}
	mazeBuildDuration.WithLabelValues(string(recipe.Shape)).Observe(time.Since(start).Seconds())
	mazesGenerated.WithLabelValues(string(recipe.Shape), string(recipe.Enhancer)).Inc()
	return m, nil
}

// materialize returns the maze for recipe from the cache, building and
// caching it on a miss. The build happens under a distributed lock so
// concurrent instances do not build the same maze twice. Cache failures
// degrade to a plain build.
func (s *MazeService) materialize(ctx context.Context, recipe domain.Recipe) (*maze.Maze, error) {
	key := recipe.CacheKey()
	if m, ok := s.cached(ctx, key); ok {
		return m, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warn("cache lock failed, building without it", "key", key, "error", err)
		return s.build(recipe)
	}
	defer unlock()

	// Another holder of the lock may have filled the entry.
	if m, ok := s.cached(ctx, key); ok {
		return m, nil
	}

	m, err := s.build(recipe)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, m); err != nil {
		s.logger.Warn("caching maze failed", "key", key, "error", err)
	}
	return m, nil
}

func (s *MazeService) cached(ctx context.Context, key string) (*maze.Maze, bool) {
	m, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		mazeCacheLookups.WithLabelValues("hit").Inc()
		return m, true
	case errors.Is(err, i.ErrCacheMiss):
		mazeCacheLookups.WithLabelValues("miss").Inc()
	default:
		mazeCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("cache read failed", "key", key, "error", err)
	}
	return nil, false
}

// fillSummary sets the fields of a record that are derived from the maze.
func (s *MazeService) fillSummary(record *domain.MazeRecord, m *maze.Maze) error {
	length, err := m.PathLength()
	if err != nil {
		return err
	}
	record.Start = m.Start
	record.Finish = m.Finish
	record.PathLength = length
	record.PlayableCells = m.PlayableCount()
	return nil
}

func (s *MazeService) replayToken(record *domain.MazeRecord) (string, error) {
	r := record.Recipe
	return s.tokenizer.Generate(map[string]interface{}{
		claimMazeID:    record.ID.String(),
		claimWidth:     r.Width,
		claimHeight:    r.Height,
		claimShape:     string(r.Shape),
		claimDiagonals: r.Diagonals,
		claimEnhancer:  string(r.Enhancer),
		claimStyle:     string(r.Style),
		claimSeed:      strconv.FormatInt(r.Seed, 10),
		claimCreatedAt: record.CreatedAt.Unix(),
	}, s.tokenTTL)
}

// recordFromClaims reads the record identity and recipe out of decoded
// replay token claims.
func recordFromClaims(claims map[string]interface{}) (*domain.MazeRecord, error) {
	invalid := func(claim string) error {
		return fmt.Errorf("%w: claim %q missing or malformed", i.ErrInvalidReplayToken, claim)
	}

	idStr, ok := claims[claimMazeID].(string)
	if !ok {
		return nil, invalid(claimMazeID)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, invalid(claimMazeID)
	}

	seedStr, ok := claims[claimSeed].(string)
	if !ok {
		return nil, invalid(claimSeed)
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, invalid(claimSeed)
	}

	width, ok := claims[claimWidth].(float64)
	if !ok {
		return nil, invalid(claimWidth)
	}
	height, ok := claims[claimHeight].(float64)
	if !ok {
		return nil, invalid(claimHeight)
	}
	diagonals, ok := claims[claimDiagonals].(bool)
	if !ok {
		return nil, invalid(claimDiagonals)
	}

	var names [3]string
	for n, claim := range []string{claimShape, claimEnhancer, claimStyle} {
		if names[n], ok = claims[claim].(string); !ok {
			return nil, invalid(claim)
		}
	}

	record := &domain.MazeRecord{
		ID: id,
		Recipe: domain.Recipe{
			Width:     int(width),
			Height:    int(height),
			Shape:     maze.Shape(names[0]),
			Diagonals: diagonals,
			Enhancer:  maze.Enhancer(names[1]),
			Style:     maze.Style(names[2]),
			Seed:      seed,
		},
	}
	if created, ok := claims[claimCreatedAt].(float64); ok {
		record.CreatedAt = time.Unix(int64(created), 0).UTC()
	}
	return record, nil
}

func clampLimit(limit int64) int64 {
	if limit <= 0 || limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
