package tui

import (
	"sync"
	"time"

	"github.com/rivo/tview"

	"noseburn/internal/config"
	"noseburn/internal/log"
	"noseburn/internal/tui/components"
	"noseburn/internal/tui/handlers"
	"noseburn/internal/vm"
)

// tickInterval is how often the scheduler wakes up. The controller's
// accumulator turns elapsed wall time into steps, so the redraw cadence and
// the stepping rate stay decoupled.
const tickInterval = 16 * time.Millisecond

// App is the tview application around one loaded machine. All mutation of
// the controller happens inside the tview event loop; the ticker goroutine
// only measures elapsed time and hands it over.
type App struct {
	app        *tview.Application
	controller *vm.Controller
	width      int // ribbon width override, 0 = fit the terminal

	dataRibbon *components.RibbonView
	metaRibbon *components.RibbonView
	inputView  *components.IOView
	outputView *components.IOView
	jumps      *components.JumpView
	code       *components.CodeView
	freq       *components.FrequencyView
	status     *components.StatusBar

	keys *handlers.KeyHandler

	quit     chan struct{}
	quitOnce sync.Once
}

// NewApplication wires the machine controller into a tview UI.
func NewApplication(controller *vm.Controller, cfg *config.Config) *App {
	a := &App{
		app:        tview.NewApplication(),
		controller: controller,
		width:      cfg.Width,
		dataRibbon: components.NewRibbonView("Data ribbon"),
		metaRibbon: components.NewRibbonView("Meta ribbon"),
		inputView:  components.NewIOView("Input"),
		outputView: components.NewIOView("Output"),
		jumps:      components.NewJumpView(),
		code:       components.NewCodeView(),
		freq:       components.NewFrequencyView(),
		status:     components.NewStatusBar(),
		keys:       handlers.NewKeyHandler(),
		quit:       make(chan struct{}),
	}

	a.setupUI()
	a.setupInputHandling()
	return a
}

func (a *App) setupUI() {
	ioRow := tview.NewFlex().
		AddItem(a.inputView.GetWrapper(), 0, 1, false).
		AddItem(a.outputView.GetWrapper(), 0, 1, false)

	detailRow := tview.NewFlex().
		AddItem(a.jumps.GetWrapper(), 0, 1, false).
		AddItem(a.code.GetWrapper(), 0, 2, false).
		AddItem(a.freq.GetWrapper(), 18, 0, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.dataRibbon.GetWrapper(), 4, 0, false).
		AddItem(a.metaRibbon.GetWrapper(), 4, 0, false).
		AddItem(ioRow, 3, 0, false).
		AddItem(detailRow, 0, 1, false).
		AddItem(a.status.GetWrapper(), 2, 0, false)

	a.app.SetRoot(root, true)
}

func (a *App) setupInputHandling() {
	a.keys.SetCallbacks(
		a.exit,
		func() { // single step also pauses, like holding the machine still
			if !a.controller.Paused() {
				a.controller.TogglePause()
			}
			a.controller.StepOnce()
			a.refresh()
		},
		func() {
			a.controller.TogglePause()
			a.refresh()
		},
		func() {
			a.controller.Reset()
			log.Info("machine reset")
			a.refresh()
		},
		func() {
			a.controller.DecreaseFrequency()
			a.refresh()
		},
		func() {
			a.controller.IncreaseFrequency()
			a.refresh()
		},
		func(b byte) {
			a.controller.QueueInput(b)
			a.refresh()
		},
	)
	a.app.SetInputCapture(a.keys.HandleKeyEvent)
}

// Run starts the scheduler and blocks in the tview event loop until quit.
func (a *App) Run() error {
	a.startScheduler()
	defer a.stopScheduler()
	return a.app.Run()
}

// startScheduler feeds elapsed wall time to the controller at a steady
// cadence. Controller mutation is queued onto the event loop so there is a
// single logical owner of execution state.
func (a *App) startScheduler() {
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-a.quit:
				return
			case now := <-ticker.C:
				elapsed := now.Sub(last)
				last = now
				a.app.QueueUpdateDraw(func() {
					a.controller.Advance(elapsed)
					a.refresh()
				})
			}
		}
	}()
}

func (a *App) stopScheduler() {
	a.quitOnce.Do(func() { close(a.quit) })
}

func (a *App) exit() {
	a.stopScheduler()
	a.app.Stop()
}

// refresh redraws every component from one frame snapshot.
func (a *App) refresh() {
	width := a.width
	if width <= 0 {
		width = a.dataRibbon.Capacity()
	}
	f := a.controller.Frame(width)

	a.dataRibbon.Update(f.Data)
	a.metaRibbon.Update(f.Meta)
	a.inputView.Update(f.Input)
	a.outputView.Update(f.Output)
	a.jumps.Update(f.Returns)
	a.code.Update(a.controller.Program().Source(), f.Span)
	a.freq.Update(a.controller.RateIndex())
	a.status.Update(f)
}
