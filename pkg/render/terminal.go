package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"fouriersketch/internal/models"
	"fouriersketch/pkg/epicycle"
)

// projector maps world points onto terminal cells, centered, with the
// horizontal scale doubled to compensate for tall character cells.
type projector struct {
	sx, sy     float64
	minX, minY float64
	offX, offY int
}

func newProjector(minX, minY, maxX, maxY float64, cols, rows int) projector {
	w := maxX - minX
	h := maxY - minY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	sy := float64(rows-1) / h
	sx := 2 * sy
	if w*sx > float64(cols-1) {
		sx = float64(cols-1) / w
		sy = sx / 2
	}

	return projector{
		sx:   sx,
		sy:   sy,
		minX: minX,
		minY: minY,
		offX: int((float64(cols) - w*sx) / 2),
		offY: int((float64(rows) - h*sy) / 2),
	}
}

func (pr projector) cell(p models.Point) (x, y int) {
	return pr.offX + int(math.Round((p.X-pr.minX)*pr.sx)),
		pr.offY + int(math.Round((p.Y-pr.minY)*pr.sy))
}

// Preview animates the epicycle drawing inside the terminal. The pen trail
// accumulates over one revolution and restarts on wraparound; Escape, q, or
// Ctrl-C quits.
type Preview struct {
	screen tcell.Screen
	series epicycle.Series
	trace  []models.Point
	proj   projector

	width  int
	height int
	frames int
	frame  int
}

// NewPreview initializes the terminal and prepares a preview run.
func NewPreview(series epicycle.Series, frames int) (*Preview, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot preview an empty epicycle series")
	}
	if frames <= 0 {
		frames = 600
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	p := &Preview{
		screen: screen,
		series: series,
		trace:  series.Trace(frames),
		frames: frames,
	}
	p.handleResize()

	return p, nil
}

func (p *Preview) handleResize() {
	p.width, p.height = p.screen.Size()
	minX, minY, maxX, maxY := bounds(p.trace)
	p.proj = newProjector(minX, minY, maxX, maxY, p.width, p.height)
	p.screen.Clear()
}

func (p *Preview) draw() {
	p.screen.Clear()

	// Pen trail, fading with age.
	for i := 0; i <= p.frame && i < len(p.trace); i++ {
		x, y := p.proj.cell(p.trace[i])
		ch := '█'
		intensity := 255 - 2*(p.frame-i)
		if intensity < 96 {
			intensity = 96
			ch = '·'
		}
		color := tcell.NewRGBColor(int32(intensity), int32(intensity), int32(intensity))
		p.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(color))
	}

	// Circle centers and pen tip.
	t := 2 * math.Pi * float64(p.frame) / float64(p.frames)
	chain := p.series.Chain(t)
	centerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, c := range chain[:len(chain)-1] {
		x, y := p.proj.cell(c)
		p.screen.SetContent(x, y, '+', nil, centerStyle)
	}
	tipX, tipY := p.proj.cell(chain[len(chain)-1])
	p.screen.SetContent(tipX, tipY, ' ', nil, tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true))

	status := fmt.Sprintf(" frame %d/%d  [q to quit] ", p.frame+1, p.frames)
	for i, r := range status {
		p.screen.SetContent(i, p.height-1, r, nil, tcell.StyleDefault)
	}

	p.screen.Show()
}

func (p *Preview) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}

	case *tcell.EventResize:
		p.handleResize()
	}

	return true
}

// Run drives the animation until the user quits, then restores the terminal.
func (p *Preview) Run() {
	defer p.screen.Fini()

	ticker := time.NewTicker(33 * time.Millisecond) // ~30 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}

		case <-ticker.C:
			p.frame = (p.frame + 1) % p.frames
			p.draw()
		}
	}
}
