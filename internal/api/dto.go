package api

import (
	"math"

	"github.com/katalvlaran/costgrid/grid"
)

// GridSpec describes the grid of a request: either a text map or a seeded
// random obstacle field. Exactly one must be set.
type GridSpec struct {
	// Map is whitespace-separated costs, one row per line, X for walls.
	Map    string      `json:"map,omitempty"`
	Random *RandomSpec `json:"random,omitempty"`
}

// RandomSpec mirrors the costmap.Random options. Each side is capped at
// 65536; the server's cell limit applies on top.
type RandomSpec struct {
	Width           int      `json:"width" binding:"required,min=1,max=65536"`
	Height          int      `json:"height" binding:"required,min=1,max=65536"`
	Seed            int64    `json:"seed"`
	Obstacles       *int     `json:"obstacles,omitempty" binding:"omitempty,min=0"`
	MaxObstacleSize int      `json:"maxObstacleSize,omitempty" binding:"omitempty,min=1"`
	CrossableRatio  *float64 `json:"crossableRatio,omitempty" binding:"omitempty,min=0,max=1"`
}

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Grid          GridSpec        `json:"grid"`
	Source        grid.Coordinate `json:"source"`
	Goal          grid.Coordinate `json:"goal"`
	Algorithm     string          `json:"algorithm" binding:"required"`
	Weight        float64         `json:"weight,omitempty"`
	Orthogonal    bool            `json:"orthogonal,omitempty"`
	MaxIterations int             `json:"maxIterations,omitempty" binding:"min=0"`
}

// SearchResponse is the reply of POST /v1/search. Cost is omitted when no
// path was found.
type SearchResponse struct {
	RunID         string      `json:"runId"`
	Algorithm     string      `json:"algorithm"`
	Status        string      `json:"status"`
	Cost          *float64    `json:"cost,omitempty"`
	Path          []grid.Step `json:"path"`
	Expanded      int         `json:"expanded"`
	Pushed        int         `json:"pushed"`
	ExecutionTime float64     `json:"executionTimeMs"`
	Cached        bool        `json:"cached"`
}

// FieldRequest is the body of POST /v1/propagate and POST /v1/distances.
type FieldRequest struct {
	Grid        GridSpec        `json:"grid"`
	Source      grid.Coordinate `json:"source"`
	Orthogonal  bool            `json:"orthogonal,omitempty"`
	MaxDistance *float64        `json:"maxDistance,omitempty" binding:"omitempty,min=0"`
}

// FieldResponse carries an accumulated cost table indexed [y][x]; null marks
// unreached cells.
type FieldResponse struct {
	RunID         string       `json:"runId"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Costs         [][]*float64 `json:"costs"`
	Reached       int          `json:"reached"`
	ExecutionTime float64      `json:"executionTimeMs"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	RunID string `json:"runId,omitempty"`
	Error string `json:"error"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// nullable converts a [y][x] table, mapping +Inf to null, and counts the
// finite entries.
func nullable(rows [][]float64) ([][]*float64, int) {
	n := 0
	out := make([][]*float64, len(rows))
	for y, row := range rows {
		out[y] = make([]*float64, len(row))
		for x, v := range row {
			if p := finite(v); p != nil {
				out[y][x] = p
				n++
			}
		}
	}
	return out, n
}
