package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs against a live MongoDB when MONGO_URI is set.
func TestMazeRepo(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(ctx) }()

	collection := "mazes_test_" + uuid.NewString()
	r := NewMazeRepo(client, "mazegen_test", collection)
	defer func() { _ = client.Database("mazegen_test").Collection(collection).Drop(ctx) }()
	require.NoError(t, r.EnsureIndexes(ctx))

	opts := maze.Options{Width: 8, Height: 8, Shape: maze.Rectangle, Enhancer: maze.NoEnhancer, Style: maze.Normal}
	var saved []*domain.MazeRecord
	for seed := int64(1); seed <= 3; seed++ {
		m, err := maze.Build(opts, seed)
		require.NoError(t, err)
		record, err := domain.NewMazeRecord(uuid.New(), domain.NewRecipe(opts, seed), m)
		require.NoError(t, err)
		record.CreatedAt = time.Unix(1_700_000_000+seed, 0).UTC()
		require.NoError(t, r.Save(ctx, record))
		saved = append(saved, record)
	}

	found, err := r.ByID(ctx, saved[1].ID)
	require.NoError(t, err)
	assert.Equal(t, saved[1].Recipe, found.Recipe)
	assert.Equal(t, saved[1].PathLength, found.PathLength)

	_, err = r.ByID(ctx, uuid.New())
	assert.ErrorIs(t, err, i.ErrMazeNotFound)

	recent, err := r.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, saved[2].ID, recent[0].ID)
	assert.Equal(t, saved[1].ID, recent[1].ID)
}
