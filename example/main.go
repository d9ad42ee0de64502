package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/meikuraledutech/pipeline"
	"github.com/meikuraledutech/pipeline/editor"
)

func main() {
	saved := make(chan struct{}, 1)

	autosave := editor.NewDebouncer(200*time.Millisecond, func() {
		fmt.Println("\n[autosave fired]")
		saved <- struct{}{}
	})
	ed := editor.NewEditor(editor.WithOnChange(autosave.Trigger))

	// ── Build a small pipeline ────────────────────────────────────────
	in := ed.Add(pipeline.TypeInput, pipeline.Position{X: 100, Y: 100})
	llm := ed.Add(pipeline.TypeLLM, pipeline.Position{X: 350, Y: 100})
	out := ed.Add(pipeline.TypeOutput, pipeline.Position{X: 600, Y: 100})
	fmt.Printf("nodes: %s, %s, %s\n", in.ID, llm.ID, out.ID)

	ed.UpdateField(in.ID, "inputName", "question")
	ed.UpdateField(llm.ID, "model", "gpt-4")

	ed.Connect(editor.ConnectionRequest{Source: in.ID, SourceHandle: "value", Target: llm.ID, TargetHandle: "prompt"})
	ed.Connect(editor.ConnectionRequest{Source: llm.ID, SourceHandle: "response", Target: out.ID, TargetHandle: "value"})

	// ── A mismatched connection is classified, not rejected ──────────
	file := ed.Add(pipeline.TypeInput, pipeline.Position{X: 100, Y: 300})
	ed.UpdateField(file.ID, "inputType", "File")
	edge, _ := ed.Connect(editor.ConnectionRequest{Source: file.ID, SourceHandle: "value", Target: llm.ID, TargetHandle: "context"})
	fmt.Printf("mismatched edge kept: compatible=%v label=%q\n", edge.Compatible, edge.Label)

	// ── Undo/redo over structural mutations ───────────────────────────
	fmt.Printf("before undo: %d nodes, %d edges\n", ed.NodeCount(), ed.EdgeCount())
	ed.Undo() // drop the mismatched edge
	ed.Undo() // drop the file input node
	fmt.Printf("after 2x undo: %d nodes, %d edges\n", ed.NodeCount(), ed.EdgeCount())
	ed.Redo()
	ed.Redo()
	fmt.Printf("after 2x redo: %d nodes, %d edges\n", ed.NodeCount(), ed.EdgeCount())

	// ── Validate the live graph ───────────────────────────────────────
	report := ed.Validate()
	fmt.Printf("report: nodes=%d edges=%d is_dag=%v\n", report.NumNodes, report.NumEdges, report.IsDAG)

	// A back edge makes it cyclic; the model stores it anyway.
	ed.Connect(editor.ConnectionRequest{Source: out.ID, SourceHandle: "value", Target: in.ID, TargetHandle: "value"})
	fmt.Printf("with back edge: is_dag=%v\n", ed.Validate().IsDAG)
	ed.Undo()

	// ── Export snapshot ───────────────────────────────────────────────
	exported := ed.Export("qa-pipeline")
	blob, _ := json.MarshalIndent(exported, "", "  ")
	fmt.Println(string(blob))

	<-saved
	autosave.Stop()
}
