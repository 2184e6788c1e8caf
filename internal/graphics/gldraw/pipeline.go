// Package gldraw draws registry arrays on an OpenGL 4.1 core context.
package gldraw

import (
	"path/filepath"

	"mini-bz/internal/drawarrays"
	"mini-bz/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/drawarrays"
	floatSize  = 4
)

var (
	VertShader = filepath.Join(ShadersDir, "drawarrays.vert")
	FragShader = filepath.Join(ShadersDir, "drawarrays.frag")
)

// Attribute locations, matching the layout qualifiers in drawarrays.vert.
var locations = [drawarrays.NumChannels]uint32{
	drawarrays.ChannelColor:    0,
	drawarrays.ChannelTexCoord: 1,
	drawarrays.ChannelNormal:   2,
	drawarrays.ChannelVertex:   3,
}

// Pipeline is a drawarrays.Backend. Each draw's interleaved buffer is
// streamed into one VBO; channels that are switched off read a constant
// attribute value instead.
type Pipeline struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	enabled [drawarrays.NumChannels]bool
	color   [4]float32

	// identity of the buffer currently in the VBO
	base     *float32
	baseLen  int
	capacity int

	texture      uint32
	alphaTexture bool
	lighting     bool
}

// NewPipeline compiles the shaders and allocates the vertex objects.
// It must run on the thread owning the GL context.
func NewPipeline() (*Pipeline, error) {
	shader, err := graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{shader: shader, color: [4]float32{1, 1, 1, 1}}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)

	p.Bind()
	p.SetMatrices(mgl32.Ident4(), mgl32.Ident4())
	p.SetModel(mgl32.Ident4())
	p.shader.SetInt("tex", 0)
	p.shader.SetVector4("lightDir", 0.3, 0.4, 0.85, 0)
	for ch := drawarrays.Channel(0); ch < drawarrays.NumChannels; ch++ {
		p.SetChannel(ch, false)
	}
	return p, nil
}

// Bind makes the pipeline's program and vertex array current.
func (p *Pipeline) Bind() {
	p.shader.Use()
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
}

// SetMatrices sets the projection and view transforms.
func (p *Pipeline) SetMatrices(proj, view mgl32.Mat4) {
	p.shader.SetMatrix4("projection", proj)
	p.shader.SetMatrix4("view", view)
}

// SetModel sets the model transform applied to following draws.
func (p *Pipeline) SetModel(model mgl32.Mat4) {
	p.shader.SetMatrix4("model", model)
}

// SetTexture binds texture to unit 0 and modulates textured draws with
// it. alpha treats the red channel as coverage, as a font atlas stores
// it. A zero texture turns texturing off.
func (p *Pipeline) SetTexture(texture uint32, alpha bool) {
	p.texture, p.alphaTexture = texture, alpha
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// SetPointSize sets the rasterized size of points in pixels.
func (p *Pipeline) SetPointSize(size float32) {
	gl.PointSize(size)
}

// SetLighting turns directional shading of arrays with normals on or off.
func (p *Pipeline) SetLighting(on bool) {
	p.lighting = on
}

// SetChannel implements drawarrays.Backend.
func (p *Pipeline) SetChannel(ch drawarrays.Channel, enabled bool) {
	p.enabled[ch] = enabled
	loc := locations[ch]
	if enabled {
		gl.EnableVertexAttribArray(loc)
		return
	}
	gl.DisableVertexAttribArray(loc)
	switch ch {
	case drawarrays.ChannelColor:
		gl.VertexAttrib4f(loc, p.color[0], p.color[1], p.color[2], p.color[3])
	case drawarrays.ChannelTexCoord:
		gl.VertexAttrib2f(loc, 0, 0)
	case drawarrays.ChannelNormal:
		gl.VertexAttrib3f(loc, 0, 0, 1)
	}
}

// SetCurrentColor implements drawarrays.Backend.
func (p *Pipeline) SetCurrentColor(r, g, b, a float32) {
	p.color = [4]float32{r, g, b, a}
	if !p.enabled[drawarrays.ChannelColor] {
		gl.VertexAttrib4f(locations[drawarrays.ChannelColor], r, g, b, a)
	}
}

// Pointer implements drawarrays.Backend. The buffer is uploaded on the
// first pointer call of a draw; the other channels reuse it.
func (p *Pipeline) Pointer(ch drawarrays.Channel, size, stride, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	if p.base != &data[0] || p.baseLen != len(data) {
		p.upload(data)
	}
	gl.VertexAttribPointerWithOffset(locations[ch], int32(size), gl.FLOAT, false,
		int32(stride*floatSize), uintptr(offset*floatSize))
}

func (p *Pipeline) upload(data []float32) {
	size := len(data) * floatSize
	if size > p.capacity {
		p.capacity = size
	}
	// orphan the previous storage so the driver need not wait on it
	gl.BufferData(gl.ARRAY_BUFFER, p.capacity, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(data))
	p.base, p.baseLen = &data[0], len(data)
}

// DrawArrays implements drawarrays.Backend.
func (p *Pipeline) DrawArrays(mode drawarrays.Mode, first, count int) {
	p.shader.SetBool("useTexture", p.texture != 0 && p.enabled[drawarrays.ChannelTexCoord])
	p.shader.SetBool("alphaTexture", p.alphaTexture)
	p.shader.SetBool("useLighting", p.lighting && p.enabled[drawarrays.ChannelNormal])
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
	p.base, p.baseLen = nil, 0
}

// Dispose releases the GL objects.
func (p *Pipeline) Dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	p.shader.Delete()
}
