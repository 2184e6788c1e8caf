package drawarrays

import (
	"fmt"
	"strings"
)

// Mode is a primitive topology. Values equal the GL enums so a GL
// backend can pass them through unchanged.
type Mode uint32

const (
	Points        Mode = 0x0000
	Lines         Mode = 0x0001
	LineLoop      Mode = 0x0002
	LineStrip     Mode = 0x0003
	Triangles     Mode = 0x0004
	TriangleStrip Mode = 0x0005
	TriangleFan   Mode = 0x0006
)

var modeNames = map[Mode]string{
	Points:        "points",
	Lines:         "lines",
	LineLoop:      "line_loop",
	LineStrip:     "line_strip",
	Triangles:     "triangles",
	TriangleStrip: "triangle_strip",
	TriangleFan:   "triangle_fan",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%#x)", uint32(m))
}

// ParseMode maps a topology name such as "triangle_fan" to its Mode.
// Dashes and case are ignored.
func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown topology %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MinVertices is the smallest vertex count that forms one primitive.
func (m Mode) MinVertices() int {
	switch m {
	case Points:
		return 1
	case Lines, LineLoop, LineStrip:
		return 2
	default:
		return 3
	}
}

// Multiple is the group size the vertex count must divide by.
func (m Mode) Multiple() int {
	if m == Triangles {
		return 3
	}
	return 1
}

// Accepts reports whether n vertices form a valid stream for m.
// Zero is always accepted: drawing nothing is not an error.
func (m Mode) Accepts(n int) bool {
	if n == 0 {
		return true
	}
	return n%m.Multiple() == 0 && n >= m.MinVertices()
}
