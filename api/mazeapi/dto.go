// Package mazeapi provides the request and response bodies of the maze HTTP API.
package mazeapi

import (
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
)

// GenerateRequest represents a request to generate one or more mazes.
// Zero values fall back to the generator defaults.
type GenerateRequest struct {
	Width     int    `json:"width" binding:"omitempty,min=2,max=512"`
	Height    int    `json:"height" binding:"omitempty,min=2,max=512"`
	Shape     string `json:"shape" binding:"omitempty,mazeshape"`
	Diagonals bool   `json:"diagonals"`
	Enhancer  string `json:"enhancer" binding:"omitempty,mazeenhancer"`
	Style     string `json:"style" binding:"omitempty,mazestyle"`
	Count     int    `json:"count" binding:"omitempty,min=1"`
}

// toDomain fills in defaults and converts the request for the service.
func (r GenerateRequest) toDomain() domain.GenerateRequest {
	opts := maze.DefaultOptions()
	if r.Width != 0 {
		opts.Width = r.Width
	}
	if r.Height != 0 {
		opts.Height = r.Height
	}
	if r.Shape != "" {
		opts.Shape = maze.Shape(r.Shape)
	}
	if r.Enhancer != "" {
		opts.Enhancer = maze.Enhancer(r.Enhancer)
	}
	if r.Style != "" {
		opts.Style = maze.Style(r.Style)
	}
	opts.Diagonals = r.Diagonals
	return domain.GenerateRequest{Options: opts, Count: r.Count}
}

// RecordResponse summarizes a stored maze.
type RecordResponse struct {
	ID            string        `json:"id"`
	Seed          string        `json:"seed"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Shape         string        `json:"shape"`
	Diagonals     bool          `json:"diagonals"`
	Enhancer      string        `json:"enhancer"`
	Style         string        `json:"style"`
	Start         maze.Position `json:"start"`
	Finish        maze.Position `json:"finish"`
	PathLength    int           `json:"path_length"`
	PlayableCells int           `json:"playable_cells"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

// MazeResponse is a full maze: its summary, a replay token and the corridors
// of every node in row-major order.
type MazeResponse struct {
	RecordResponse
	ReplayToken string `json:"replay_token"`
	Outside     []bool `json:"outside"`
	Corridors   []int  `json:"corridors"` // bit d set when a corridor leaves in direction d
}

func newRecordResponse(r *domain.MazeRecord) RecordResponse {
	resp := RecordResponse{
		ID:            r.ID.String(),
		Seed:          strconv.FormatInt(r.Recipe.Seed, 10),
		Width:         r.Recipe.Width,
		Height:        r.Recipe.Height,
		Shape:         string(r.Recipe.Shape),
		Diagonals:     r.Recipe.Diagonals,
		Enhancer:      string(r.Recipe.Enhancer),
		Style:         string(r.Recipe.Style),
		Start:         r.Start,
		Finish:        r.Finish,
		PathLength:    r.PathLength,
		PlayableCells: r.PlayableCells,
	}
	if !r.CreatedAt.IsZero() {
		created := r.CreatedAt
		resp.CreatedAt = &created
	}
	return resp
}

func newRecordResponses(records []*domain.MazeRecord) []RecordResponse {
	resp := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, newRecordResponse(r))
	}
	return resp
}

func newMazeResponse(g *domain.GeneratedMaze) MazeResponse {
	resp := MazeResponse{
		RecordResponse: newRecordResponse(g.Record),
		ReplayToken:    g.ReplayToken,
		Outside:        make([]bool, len(g.Maze.Nodes)),
		Corridors:      make([]int, len(g.Maze.Nodes)),
	}
	for n := range g.Maze.Nodes {
		resp.Outside[n] = g.Maze.Nodes[n].Outside
		resp.Corridors[n] = int(g.Maze.Nodes[n].Actual)
	}
	return resp
}
