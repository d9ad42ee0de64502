package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/pipeline"
)

// SavePipeline stores a full snapshot in one transaction with replace
// semantics: any previously stored nodes/edges for the pipeline id are
// dropped first, so the row set always mirrors the exported snapshot.
// A pipeline without an ID gets an auto-generated UUID. Returns the
// pipeline with its ID filled in.
func (s *PGStore) SavePipeline(ctx context.Context, p *pipeline.Pipeline) (*pipeline.Pipeline, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO pipelines (id, name) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, saved_at = NOW()`,
		p.ID, p.Name,
	); err != nil {
		return nil, fmt.Errorf("pipeline: upsert pipeline: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM pipeline_edges WHERE pipeline_id = $1`, p.ID); err != nil {
		return nil, fmt.Errorf("pipeline: delete edges: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pipeline_nodes WHERE pipeline_id = $1`, p.ID); err != nil {
		return nil, fmt.Errorf("pipeline: delete nodes: %w", err)
	}

	for i, n := range p.Nodes {
		position, err := json.Marshal(n.Position)
		if err != nil {
			return nil, fmt.Errorf("pipeline: marshal position for node %s: %w", n.ID, err)
		}
		data, err := json.Marshal(n.Data)
		if err != nil {
			return nil, fmt.Errorf("pipeline: marshal data for node %s: %w", n.ID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO pipeline_nodes (id, pipeline_id, ord, type, selected, position, data)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			n.ID, p.ID, i, n.Type, n.Selected, position, data,
		); err != nil {
			return nil, fmt.Errorf("pipeline: insert node %s: %w", n.ID, err)
		}
	}

	for i, e := range p.Edges {
		if _, err := tx.Exec(ctx,
			`INSERT INTO pipeline_edges (id, pipeline_id, ord, source, source_handle, target, target_handle, compatible, label)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID, p.ID, i, e.Source, e.SourceHandle, e.Target, e.TargetHandle, e.Compatible, e.Label,
		); err != nil {
			return nil, fmt.Errorf("pipeline: insert edge %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("pipeline: commit: %w", err)
	}

	return p, nil
}

// GetPipeline retrieves a full snapshot by id, nodes and edges in their
// saved order. Returns nil, nil if the pipeline doesn't exist.
func (s *PGStore) GetPipeline(ctx context.Context, id string) (*pipeline.Pipeline, error) {
	p := &pipeline.Pipeline{ID: id}

	err := s.db.QueryRow(ctx,
		`SELECT name FROM pipelines WHERE id = $1`, id,
	).Scan(&p.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pipeline: get pipeline: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, type, selected, position, data FROM pipeline_nodes
		 WHERE pipeline_id = $1 ORDER BY ord`, id)
	if err != nil {
		return nil, fmt.Errorf("pipeline: query nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n pipeline.Node
		var position, data []byte
		if err := rows.Scan(&n.ID, &n.Type, &n.Selected, &position, &data); err != nil {
			return nil, fmt.Errorf("pipeline: scan node: %w", err)
		}
		if err := json.Unmarshal(position, &n.Position); err != nil {
			return nil, fmt.Errorf("pipeline: decode position for node %s: %w", n.ID, err)
		}
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return nil, fmt.Errorf("pipeline: decode data for node %s: %w", n.ID, err)
		}
		p.Nodes = append(p.Nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: rows nodes: %w", err)
	}

	rows, err = s.db.Query(ctx,
		`SELECT id, source, source_handle, target, target_handle, compatible, label FROM pipeline_edges
		 WHERE pipeline_id = $1 ORDER BY ord`, id)
	if err != nil {
		return nil, fmt.Errorf("pipeline: query edges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e pipeline.Edge
		if err := rows.Scan(&e.ID, &e.Source, &e.SourceHandle, &e.Target, &e.TargetHandle, &e.Compatible, &e.Label); err != nil {
			return nil, fmt.Errorf("pipeline: scan edge: %w", err)
		}
		if e.Compatible {
			e.RenderHint = pipeline.RenderCompatible
		} else {
			e.RenderHint = pipeline.RenderMismatched
		}
		p.Edges = append(p.Edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: rows edges: %w", err)
	}

	return p, nil
}

// ListPipelines returns all saved pipelines with their structural
// counts, most recently saved first. Returns an empty slice (not nil)
// if none exist.
func (s *PGStore) ListPipelines(ctx context.Context) ([]pipeline.PipelineInfo, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.name, p.saved_at,
		       (SELECT COUNT(*) FROM pipeline_nodes n WHERE n.pipeline_id = p.id),
		       (SELECT COUNT(*) FROM pipeline_edges e WHERE e.pipeline_id = p.id)
		FROM pipelines p
		ORDER BY p.saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("pipeline: list pipelines: %w", err)
	}
	defer rows.Close()

	infos := []pipeline.PipelineInfo{}
	for rows.Next() {
		var info pipeline.PipelineInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.SavedAt, &info.NumNodes, &info.NumEdges); err != nil {
			return nil, fmt.Errorf("pipeline: scan pipeline: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: rows pipelines: %w", err)
	}

	return infos, nil
}

// DeletePipeline removes a pipeline and its nodes/edges (cascade).
// No error if the id doesn't exist.
func (s *PGStore) DeletePipeline(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM pipelines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pipeline: delete pipeline: %w", err)
	}
	return nil
}
