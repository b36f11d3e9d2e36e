package chunk

// State is the pipeline stage a chunk has completed.
type State int

const (
	Uninitialized State = iota
	Generated
	Lit
	Meshed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Generated:
		return "generated"
	case Lit:
		return "lit"
	case Meshed:
		return "meshed"
	default:
		return "unknown"
	}
}
