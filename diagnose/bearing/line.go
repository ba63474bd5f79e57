package bearing

// Line identifies a characteristic defect frequency.
type Line int

// Characteristic lines.
const (
	BPFO Line = iota
	BPFI
	BSF
	FTF
)

// Lines lists every characteristic line in report order.
var Lines = [...]Line{BPFO, BPFI, BSF, FTF}

// String returns the conventional abbreviation.
func (l Line) String() string {
	switch l {
	case BPFO:
		return "BPFO"
	case BPFI:
		return "BPFI"
	case BSF:
		return "BSF"
	case FTF:
		return "FTF"
	default:
		return "unknown"
	}
}

// Frequencies holds the shaft rate and the four characteristic lines, in Hz
// or in orders depending on the producer.
type Frequencies struct {
	Shaft float64
	BPFO  float64
	BPFI  float64
	BSF   float64
	FTF   float64
}

// Line returns the value for l.
func (f Frequencies) Line(l Line) float64 {
	switch l {
	case BPFO:
		return f.BPFO
	case BPFI:
		return f.BPFI
	case BSF:
		return f.BSF
	case FTF:
		return f.FTF
	default:
		return 0
	}
}
