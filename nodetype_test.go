package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortType(t *testing.T) {
	t.Run("inputType wins", func(t *testing.T) {
		n := Node{Data: map[string]any{"inputType": "File", "outputType": "Text"}}
		assert.Equal(t, "File", PortType(n))
	})

	t.Run("outputType when no inputType", func(t *testing.T) {
		n := Node{Data: map[string]any{"outputType": "Image"}}
		assert.Equal(t, "Image", PortType(n))
	})

	t.Run("default when neither declared", func(t *testing.T) {
		assert.Equal(t, DefaultPortType, PortType(Node{Data: map[string]any{}}))
		assert.Equal(t, DefaultPortType, PortType(Node{}))
	})

	t.Run("non-string values ignored", func(t *testing.T) {
		n := Node{Data: map[string]any{"inputType": 42}}
		assert.Equal(t, DefaultPortType, PortType(n))
	})
}

func TestClassify(t *testing.T) {
	t.Run("matching types are compatible", func(t *testing.T) {
		a := Node{Data: map[string]any{"outputType": "Text"}}
		b := Node{Data: map[string]any{"inputType": "Text"}}
		got := Classify(a, b)
		assert.True(t, got.Compatible)
		assert.Empty(t, got.Label)
		assert.Equal(t, RenderCompatible, got.RenderHint())
	})

	t.Run("mismatch is tagged, not rejected", func(t *testing.T) {
		a := Node{Data: map[string]any{"outputType": "Text"}}
		b := Node{Data: map[string]any{"inputType": "File"}}
		got := Classify(a, b)
		assert.False(t, got.Compatible)
		assert.Equal(t, MismatchLabel, got.Label)
		assert.Equal(t, RenderMismatched, got.RenderHint())
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		a := Node{Data: map[string]any{"outputType": "text"}}
		b := Node{Data: map[string]any{"inputType": "Text"}}
		assert.False(t, Classify(a, b).Compatible)
	})

	t.Run("undeclared endpoints default to Text and match", func(t *testing.T) {
		assert.True(t, Classify(Node{}, Node{}).Compatible)
	})
}
