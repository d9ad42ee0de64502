package main

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meikuraledutech/pipeline"
)

// parseRequest is the body of POST /pipelines/parse: the serialized
// graph snapshot as exported by the editor.
type parseRequest struct {
	Nodes []pipeline.Node `json:"nodes"`
	Edges []pipeline.Edge `json:"edges"`
}

// buildApp wires the HTTP API. store may be nil, in which case the
// stateless endpoints (health, parse, metrics) still work and the
// snapshot routes answer 503.
func buildApp(cfg *Config, store pipeline.Store, logger *slog.Logger) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// ── Health ────────────────────────────────────────────────────────
	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "online", "service": "pipeline-builder"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// ── Validation ────────────────────────────────────────────────────
	app.Post("/pipelines/parse", func(c fiber.Ctx) error {
		var req parseRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		start := time.Now()
		report := pipeline.Validate(req.Nodes, req.Edges)
		parseDuration.Observe(time.Since(start).Seconds())
		parseRequestsTotal.Inc()
		if !report.IsDAG {
			parseCyclesTotal.Inc()
		}

		logger.Info("pipeline parsed",
			slog.Int("num_nodes", report.NumNodes),
			slog.Int("num_edges", report.NumEdges),
			slog.Bool("is_dag", report.IsDAG),
		)
		return c.JSON(report)
	})

	requireStore := func(c fiber.Ctx) (pipeline.Store, bool) {
		if store == nil {
			_ = c.Status(503).JSON(fiber.Map{"error": "persistence not configured"})
			return nil, false
		}
		return store, true
	}

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", func(c fiber.Ctx) error {
		st, ok := requireStore(c)
		if !ok {
			return nil
		}
		if err := st.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", func(c fiber.Ctx) error {
		st, ok := requireStore(c)
		if !ok {
			return nil
		}
		if err := st.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Pipeline snapshots ────────────────────────────────────────────
	app.Post("/pipelines", func(c fiber.Ctx) error {
		st, ok := requireStore(c)
		if !ok {
			return nil
		}
		var p pipeline.Pipeline
		if err := c.Bind().JSON(&p); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		result, err := st.SavePipeline(c.Context(), &p)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		// Saving also reports the verdict so callers don't need a
		// second round trip through /pipelines/parse.
		return c.Status(201).JSON(fiber.Map{
			"pipeline": result,
			"report":   pipeline.Validate(result.Nodes, result.Edges),
		})
	})

	app.Get("/pipelines", func(c fiber.Ctx) error {
		st, ok := requireStore(c)
		if !ok {
			return nil
		}
		infos, err := st.ListPipelines(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(infos)
	})

	app.Get("/pipelines/:id", func(c fiber.Ctx) error {
		st, ok := requireStore(c)
		if !ok {
			return nil
		}
		p, err := st.GetPipeline(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if p == nil {
			return c.Status(404).JSON(fiber.Map{"error": "pipeline not found"})
		}
		return c.JSON(p)
	})

	app.Delete("/pipelines/:id", func(c fiber.Ctx) error {
		st, ok := requireStore(c)
		if !ok {
			return nil
		}
		if err := st.DeletePipeline(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	return app
}
