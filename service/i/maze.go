package i

import (
	"context"

	"github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze record persistence.
type MazeRepo interface {
	// Save inserts or updates a maze record.
	Save(ctx context.Context, record *domain.MazeRecord) error

	// ByID retrieves a maze record by its ID.
	// Returns ErrMazeNotFound when no record has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int64) ([]*domain.MazeRecord, error)
}

// MazeCache stores finished mazes by recipe cache key.
type MazeCache interface {
	// Get returns the cached maze, or ErrCacheMiss.
	Get(ctx context.Context, key string) (*maze.Maze, error)

	// Set stores a maze under key until the cache TTL expires.
	Set(ctx context.Context, key string, m *maze.Maze) error

	// Lock takes a distributed lock on key. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}

// MazeCodec converts finished mazes to and from bytes.
type MazeCodec interface {
	Encode(m *maze.Maze) ([]byte, error)
	Decode(data []byte) (*maze.Maze, error)
}

// SortedSet keeps members ordered by score.
type SortedSet interface {
	// Add inserts or rescores a member.
	Add(ctx context.Context, key string, score float64, member string) error

	// Top returns up to n members with the highest scores.
	Top(ctx context.Context, key string, n int64) ([]string, error)

	// Count returns the number of members, or 0 when it cannot be read.
	Count(ctx context.Context, key string) int64
}

// MazeService generates mazes and serves them back.
type MazeService interface {
	Generate(ctx context.Context, req domain.GenerateRequest) ([]*domain.GeneratedMaze, error)
	Replay(ctx context.Context, token string) (*domain.GeneratedMaze, error)
	ByID(ctx context.Context, id uuid.UUID) (*domain.GeneratedMaze, error)
	Recent(ctx context.Context, limit int64) ([]*domain.MazeRecord, error)
	Hardest(ctx context.Context, limit int64) ([]*domain.MazeRecord, error)
}
