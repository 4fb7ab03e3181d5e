package scrollkit

import "github.com/hajimehoshi/ebiten/v2"

const (
	defaultWheelSpeed = 40
	defaultKeySpeed   = 8
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// WheelSpeed is the distance scrolled per wheel notch, in pixels.
	// Zero uses 40.
	WheelSpeed float64
	// Update, when set, runs every game tick before the frame queue steps.
	Update func() error
	// Draw renders the document. The engine has already applied this
	// frame's instructions when it is called.
	Draw func(screen *ebiten.Image)
	// ShowFPS draws FPS, TPS and the page offset over the document.
	ShowFPS bool
}

// game adapts an Engine and its FrameQueue to ebiten.Game.
type game struct {
	engine *Engine
	queue  *FrameQueue
	cfg    RunConfig
	fps    *fpsOverlay
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	if st, ok := g.engine.doc.(ScrollTarget); ok {
		dy := 0.0
		if _, wy := ebiten.Wheel(); wy != 0 {
			dy -= wy * g.cfg.WheelSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			dy += defaultKeySpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			dy -= defaultKeySpeed
		}
		if dy != 0 {
			st.SetScrollY(st.ScrollY() + dy)
		}
	}
	g.queue.Step()
	if g.fps != nil {
		g.fps.update(1/float64(ebiten.TPS()), g.engine.doc.PageYOffset())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and steps queue once per ebiten tick, so an engine
// created with NewEngine(doc, queue) animates as the user scrolls with the
// mouse wheel or the arrow keys. It blocks until the window is closed.
//
//	queue := scrollkit.NewFrameQueue()
//	engine := scrollkit.NewEngine(doc, queue)
//	engine.Add(doc.Body(), true)
//	err := scrollkit.Run(engine, queue, scrollkit.RunConfig{
//		Title: "Parallax", Width: 640, Height: 480, Draw: draw,
//	})
func Run(engine *Engine, queue *FrameQueue, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.WheelSpeed == 0 {
		cfg.WheelSpeed = defaultWheelSpeed
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	g := &game{engine: engine, queue: queue, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}
