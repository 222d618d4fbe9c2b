package diag

// Confidence records how a finding was established. Structural findings
// follow from the shape of the tree alone; inference-backed findings also
// depend on type information resolved for one of the operands.
type Confidence uint8

const (
	// ConfidenceHigh marks findings derived purely from tree structure.
	ConfidenceHigh Confidence = iota
	// ConfidenceInference marks findings that relied on resolved types.
	ConfidenceInference
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "HIGH"
	case ConfidenceInference:
		return "INFERENCE"
	}
	return "UNKNOWN"
}
