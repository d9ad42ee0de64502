package pipeline

// Canonical node type tags produced by the builder toolbar. The engine
// accepts any tag; these are the ones the stock palette drags in.
const (
	TypeInput     = "customInput"
	TypeOutput    = "customOutput"
	TypeLLM       = "llm"
	TypeText      = "text"
	TypeAPI       = "api"
	TypeMath      = "math"
	TypeFilter    = "filter"
	TypeDelay     = "delay"
	TypeCondition = "condition"
)

// DefaultPortType is assumed for nodes that declare no port type.
const DefaultPortType = "Text"

// MismatchLabel annotates edges whose endpoint types differ.
const MismatchLabel = "Data Types don't match"

// PortType resolves a node's effective port type: the "inputType" field
// if set, else "outputType", else DefaultPortType. Comparison downstream
// is case-sensitive string equality.
func PortType(n Node) string {
	if v, ok := n.Data["inputType"].(string); ok && v != "" {
		return v
	}
	if v, ok := n.Data["outputType"].(string); ok && v != "" {
		return v
	}
	return DefaultPortType
}

// Classification is the verdict on a proposed connection. An
// incompatible pair still produces a valid edge; the classification
// only controls how it is tagged and rendered.
type Classification struct {
	Compatible bool
	Label      string
}

// RenderHint maps the classification to an edge render hint.
func (c Classification) RenderHint() string {
	if c.Compatible {
		return RenderCompatible
	}
	return RenderMismatched
}

// Classify decides whether an edge between the two nodes would connect
// matching port types.
func Classify(source, target Node) Classification {
	if PortType(source) == PortType(target) {
		return Classification{Compatible: true}
	}
	return Classification{Compatible: false, Label: MismatchLabel}
}
