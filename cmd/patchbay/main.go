package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/patchbay/terminal"
	"github.com/lixenwraith/patchbay/ui"
)

var muteFlag = flag.Bool("mute", false, "Disable connection feedback sound")

const sampleRate = beep.SampleRate(44100)

func main() {
	// Panic recovery: restore the terminal before reporting, so the crash
	// output is readable and the shell is usable
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPATCHBAY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	scr, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}

	ctx, err := ui.NewScreenContext(scr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Close()

	audio := false
	if !*muteFlag {
		// Non-fatal, the editor runs fine without sound
		audio = speaker.Init(sampleRate, sampleRate.N(time.Second/10)) == nil
		if audio {
			defer speaker.Close()
		}
	}

	theme := ui.DefaultTheme()
	bus := ctx.Bus()

	// Stats label, draggable, refreshed from resize and pointer events
	stats := ui.NewLabel(scr, "", 30, 5, 10, 0, theme.Text)
	stats.OffX, stats.OffY = 1, 1
	updateStats := func(*ui.Event) {
		w, h := ctx.Size()
		p := ctx.Pointer()
		stats.Text = fmt.Sprintf("screen: %dx%d\npointer: %d,%d", w, h, p.X, p.Y)
	}
	updateStats(nil)
	bus.Subscribe(ui.EventResize, updateStats)
	bus.Subscribe(ui.EventMousemove, updateStats)
	ui.MakeDraggable(ctx, stats.Element)

	quit := ui.NewButton(scr, "Quit", 8, 3, 2, 1, theme)
	quit.OnClick(ctx, ctx.Stop)

	alpha := ui.NewConnectableNode(ctx, "alpha", 22, 7, 6, 8, theme)
	beta := ui.NewConnectableNode(ctx, "beta", 22, 7, 44, 14, theme)
	if audio {
		alpha.OnConnect = func(*ui.Connection) { playBlip() }
	}

	ctx.AddChild(stats.Element)
	ctx.AddChild(quit.Element)
	ctx.AddChild(alpha.Elem())
	ctx.AddChild(beta.Elem())

	ctx.Run()
}

// playBlip plays a short tone when a connection lands
func playBlip() {
	tone, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), tone))
}
