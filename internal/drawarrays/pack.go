package drawarrays

// Interleaved layout: every vertex occupies Stride floats regardless of
// which attributes are in use. Unused slots stay zero.
const (
	Stride = 12

	ColorOffset    = 0
	TexCoordOffset = 4
	NormalOffset   = 6
	VertexOffset   = 9

	ColorSize    = 4
	TexCoordSize = 2
	NormalSize   = 3
	VertexSize   = 3
)

// Channel identifies one per-vertex attribute stream.
type Channel int

const (
	ChannelColor Channel = iota
	ChannelTexCoord
	ChannelNormal
	ChannelVertex

	NumChannels = 4
)

var channelNames = [NumChannels]string{"color", "texcoord", "normal", "vertex"}

func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return "unknown"
	}
	return channelNames[c]
}

// Layout returns the component count and float offset of a channel
// within one interleaved vertex.
func (c Channel) Layout() (size, offset int) {
	switch c {
	case ChannelColor:
		return ColorSize, ColorOffset
	case ChannelTexCoord:
		return TexCoordSize, TexCoordOffset
	case ChannelNormal:
		return NormalSize, NormalOffset
	default:
		return VertexSize, VertexOffset
	}
}

// Pack interleaves the attribute lists into a zero-filled buffer of
// len(vertices)/3 * Stride floats. Attribute values past the last vertex
// are dropped; missing ones stay zero.
func Pack(colors, texCoords, normals, vertices []float32) []float32 {
	elements := len(vertices) / VertexSize
	if elements == 0 {
		return nil
	}
	buf := make([]float32, elements*Stride)
	scatter(buf, colors, ColorSize, ColorOffset, elements)
	scatter(buf, texCoords, TexCoordSize, TexCoordOffset, elements)
	scatter(buf, normals, NormalSize, NormalOffset, elements)
	scatter(buf, vertices, VertexSize, VertexOffset, elements)
	return buf
}

func scatter(buf, src []float32, size, offset, elements int) {
	n := min(len(src), elements*size)
	for i := 0; i < n; i++ {
		buf[i/size*Stride+i%size+offset] = src[i]
	}
}
