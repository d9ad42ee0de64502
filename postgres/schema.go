package postgres

import "context"

// ord columns keep the editor's insertion order; rows of one save share
// a transaction timestamp, so created_at alone cannot order them.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS pipelines (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    saved_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS pipeline_nodes (
    id          TEXT NOT NULL,
    pipeline_id TEXT NOT NULL REFERENCES pipelines(id) ON DELETE CASCADE,
    ord         INTEGER NOT NULL,
    type        TEXT NOT NULL DEFAULT '',
    selected    BOOLEAN NOT NULL DEFAULT FALSE,
    position    JSONB NOT NULL DEFAULT '{}',
    data        JSONB NOT NULL DEFAULT '{}',
    PRIMARY KEY (pipeline_id, id)
);

CREATE TABLE IF NOT EXISTS pipeline_edges (
    id            TEXT NOT NULL,
    pipeline_id   TEXT NOT NULL REFERENCES pipelines(id) ON DELETE CASCADE,
    ord           INTEGER NOT NULL,
    source        TEXT NOT NULL,
    source_handle TEXT NOT NULL DEFAULT '',
    target        TEXT NOT NULL,
    target_handle TEXT NOT NULL DEFAULT '',
    compatible    BOOLEAN NOT NULL DEFAULT TRUE,
    label         TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (pipeline_id, id)
);

CREATE INDEX IF NOT EXISTS idx_pipeline_nodes_pipeline ON pipeline_nodes(pipeline_id);
CREATE INDEX IF NOT EXISTS idx_pipeline_edges_pipeline ON pipeline_edges(pipeline_id);
`

// CreateSchema creates the pipeline tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the pipeline tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS pipeline_edges, pipeline_nodes, pipelines CASCADE;`)
	return err
}
