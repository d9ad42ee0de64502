package pipeline

import (
	"context"
	"errors"
	"time"
)

// ErrPipelineNotFound is returned when an operation targets a pipeline
// id that is not in the store.
var ErrPipelineNotFound = errors.New("pipeline: pipeline not found")

// PipelineInfo is a listing entry: identity plus structural counts,
// without the full node/edge payload.
type PipelineInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"pipelineName"`
	NumNodes int       `json:"num_nodes"`
	NumEdges int       `json:"num_edges"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store defines the contract for persisting pipeline snapshots. Saves
// have replace semantics: the stored pipeline always mirrors the full
// exported snapshot, never a partial diff.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Pipelines
	SavePipeline(ctx context.Context, p *Pipeline) (*Pipeline, error)
	GetPipeline(ctx context.Context, id string) (*Pipeline, error)
	ListPipelines(ctx context.Context) ([]PipelineInfo, error)
	DeletePipeline(ctx context.Context, id string) error
}
