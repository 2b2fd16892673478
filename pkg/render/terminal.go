package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

// DefaultSymbols maps the default bodies to the glyph drawn for them
var DefaultSymbols = map[string]rune{
	"sun":     '@',
	"mercury": '1',
	"venus":   '2',
	"earth":   '3',
	"moon":    'o',
	"mars":    '4',
	"jupiter": '5',
	"saturn":  '6',
	"uranus":  '7',
	"neptune": '8',
}

// TerminalBackend provides a simple top-down ASCII rendering of the orbital
// plane. Only sphere draws are plotted.
type TerminalBackend struct {
	out     io.Writer
	width   int
	height  int
	buffer  [][]rune
	scale   float32
	Symbols map[string]rune
	Clear   bool

	nextID entity.TextureHandle
}

// NewTerminalBackend creates a terminal backend with the specified
// dimensions. scale is the number of world units per character cell.
func NewTerminalBackend(out io.Writer, width, height int, scale float32) *TerminalBackend {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalBackend{
		out:     out,
		width:   width,
		height:  height,
		buffer:  buffer,
		scale:   scale,
		Symbols: DefaultSymbols,
		nextID:  1,
	}
}

// worldToScreen converts world X/Z coordinates to a cell. Character cells
// are about twice as tall as wide, so Z is halved.
func (r *TerminalBackend) worldToScreen(pos mgl32.Vec3) (int, int) {
	x := int(pos.X()/r.scale + float32(r.width)/2)
	y := int(pos.Z()/(2*r.scale) + float32(r.height)/2)
	return x, y
}

// CreateTexture implements Backend. Pixels are ignored.
func (r *TerminalBackend) CreateTexture(*resource.Image) (entity.TextureHandle, error) {
	h := r.nextID
	r.nextID++
	return h, nil
}

// SetViewport implements Backend
func (r *TerminalBackend) SetViewport(int, int) {}

// SetProjection implements Backend
func (r *TerminalBackend) SetProjection(mgl32.Mat4) {}

// SetView implements Backend
func (r *TerminalBackend) SetView(mgl32.Mat4) {}

// BeginFrame implements Backend
func (r *TerminalBackend) BeginFrame() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Draw implements Backend
func (r *TerminalBackend) Draw(call DrawCall) {
	if call.Kind != KindSphere {
		return
	}

	x, y := r.worldToScreen(call.Model.Col(3).Vec3())
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = r.symbol(call.Label)
	}
}

func (r *TerminalBackend) symbol(label string) rune {
	if s, ok := r.Symbols[label]; ok {
		return s
	}
	for _, c := range label {
		return unicode.ToUpper(c)
	}
	return '*'
}

// Err implements Backend
func (r *TerminalBackend) Err() error {
	return nil
}

// EndFrame implements Backend
func (r *TerminalBackend) EndFrame() {
	var sb strings.Builder
	if r.Clear {
		sb.WriteString("\033[H\033[2J")
	}

	border := "+" + strings.Repeat("-", r.width) + "+\n"
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteString("|")
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	fmt.Fprint(r.out, sb.String())
}

// Cell returns the glyph at a cell of the last frame
func (r *TerminalBackend) Cell(x, y int) rune {
	return r.buffer[y][x]
}
