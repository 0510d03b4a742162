package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/affine/internal/logger"
	"github.com/Faultbox/affine/internal/mesh"
	"github.com/Faultbox/affine/pkg/math"
)

// Options controls the interactive viewer loop.
type Options struct {
	FPS       int       // frames per second, 0 means 25
	Style     int       // shading ramp index
	Spin      math.Vec3 // degrees per frame around each axis
	Translate math.Vec3 // world offset applied after rotation
	Scale     float32   // uniform mesh scale, 0 means 1
	AutoSpin  bool
}

// Viewer spins a mesh on a tcell screen, rebuilding the model
// transform every frame as translate * rotate * scale.
type Viewer struct {
	base *mesh.TriMesh
	opts Options

	// mu guards the fields below; the input goroutine writes them
	// while the ticker loop reads.
	mu       sync.Mutex
	angles   math.Vec3 // accumulated rotation in degrees
	frame    int
	autoSpin bool
	style    int
}

// NewViewer returns a viewer for the given mesh.
func NewViewer(m *mesh.TriMesh, opts Options) *Viewer {
	if opts.FPS <= 0 {
		opts.FPS = 25
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	return &Viewer{
		base:     m,
		opts:     opts,
		autoSpin: opts.AutoSpin,
		style:    opts.Style,
	}
}

// Transform returns the current frame's model matrix.
func (v *Viewer) Transform() math.Mat4 {
	v.mu.Lock()
	angles := v.angles
	v.mu.Unlock()
	return v.transformAt(angles)
}

func (v *Viewer) transformAt(angles math.Vec3) math.Mat4 {
	s := v.opts.Scale
	return math.Translate(v.opts.Translate).
		Mul(math.RotateX(angles.X)).
		Mul(math.RotateY(angles.Y)).
		Mul(math.RotateZ(angles.Z)).
		Mul(math.Scale(s, s, s))
}

func (v *Viewer) step() {
	v.mu.Lock()
	if v.autoSpin {
		v.angles = v.angles.Add(v.opts.Spin)
	}
	v.frame++
	v.mu.Unlock()
}

func (v *Viewer) rotate(delta math.Vec3) {
	v.mu.Lock()
	v.angles = v.angles.Add(delta)
	v.mu.Unlock()
}

func (v *Viewer) resetAngles() {
	v.mu.Lock()
	v.angles = math.Vec3{}
	v.mu.Unlock()
}

func (v *Viewer) toggleSpin() {
	v.mu.Lock()
	v.autoSpin = !v.autoSpin
	v.mu.Unlock()
}

func (v *Viewer) nextStyle() {
	v.mu.Lock()
	v.style = (v.style + 1) % StyleCount()
	v.mu.Unlock()
}

func (v *Viewer) snapshot() (angles math.Vec3, frame, style int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.angles, v.frame, v.style
}

// Run drives the event and render loop until the user quits.
func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("viewer started",
		zap.Int("fps", v.opts.FPS),
		zap.Int("vertices", len(v.base.Vertices)))

	quit := make(chan struct{})
	go v.handleInput(screen, quit)

	ticker := time.NewTicker(time.Second / time.Duration(v.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			_, frame, _ := v.snapshot()
			logger.Info("viewer closed", zap.Int("frames", frame))
			return nil
		case <-ticker.C:
			v.step()
			v.draw(screen)
		}
	}
}

func (v *Viewer) handleInput(screen tcell.Screen, quit chan struct{}) {
	defer close(quit)
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyUp:
				v.rotate(math.Vec3{X: -5})
			case tcell.KeyDown:
				v.rotate(math.Vec3{X: 5})
			case tcell.KeyLeft:
				v.rotate(math.Vec3{Y: -5})
			case tcell.KeyRight:
				v.rotate(math.Vec3{Y: 5})
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return
				case 'r':
					v.resetAngles()
				case ' ', 'a':
					v.toggleSpin()
				case 's', 'S':
					v.nextStyle()
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func (v *Viewer) draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	if w <= 10 || h <= 5 {
		screen.Show()
		return
	}

	angles, frame, style := v.snapshot()
	tf := v.transformAt(angles)
	world := v.base.Transform(tf)

	// Rows 0 and h-1 hold the help and status lines; the mesh gets the
	// band in between, and Frame fits and clips against that one height.
	viewH := h - 2
	extent := v.base.Bounds.Max.Sub(v.base.Bounds.Min).Length() * v.opts.Scale
	proj := NewProjector(w, viewH, extent)

	for _, c := range Frame(world, proj, w, viewH, style) {
		// Brighten with depth so nearer samples stand out.
		gray := int32(90 + 160*c.Depth)
		cellStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(gray, gray, gray))
		screen.SetContent(c.X, c.Y+1, c.Ch, nil, cellStyle)
	}

	drawText(screen, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"Arrows:rotate Space:auto R:reset S:style Q:quit")

	pos := tf.Translation()
	status := fmt.Sprintf("frame %d | angles (%.0f, %.0f, %.0f) | pos (%.1f, %.1f, %.1f)",
		frame, angles.X, angles.Y, angles.Z, pos.X, pos.Y, pos.Z)
	drawText(screen, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)

	screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
