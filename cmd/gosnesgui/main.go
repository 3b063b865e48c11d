// Command gosnesgui is a thin windowed front end implementing
// ebiten.Game: Update() drives the scheduler one scanline (341 steps)
// at a time and delivers NMI at V-blank, Draw() blits the PPU's placeholder
// framebuffer. Pixel content is not defined by this core (PPU
// compositing is a named non-goal); only the windowing/timing loop,
// grounded on the teacher's internal/graphics/ebitengine_backend.go
// and internal/app/emulator.go, is exercised here (SPEC_FULL.md sec 3).
package main

import (
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gosnes/internal/apu"
	"gosnes/internal/bus"
	"gosnes/internal/cartridge"
	"gosnes/internal/controller"
	"gosnes/internal/cpu"
	"gosnes/internal/ppu"
	"gosnes/internal/scheduler"
)

const windowScale = 2

type game struct {
	sched *scheduler.Scheduler
	cpu   *cpu.CPU
	ppu   *ppu.PPU
	pad   *controller.Pad
	frame  *ebiten.Image
	width  int
	height int
}

func newGame(sched *scheduler.Scheduler, c *cpu.CPU, p *ppu.PPU, pad *controller.Pad) *game {
	return &game{
		sched:  sched,
		cpu:    c,
		ppu:    p,
		pad:    pad,
		frame:  ebiten.NewImage(ppu.Width(), ppu.Height()),
		width:  ppu.Width(),
		height: ppu.Height(),
	}
}

func (g *game) Update() error {
	g.processInput()
	if g.cpu.State() == cpu.Stopped {
		return nil
	}
	// Advancing only one dot per Update call would be far too slow for
	// ebiten's fixed-tick loop, so run a full scanline's
	// worth of CPU steps per call and let the scheduler pace NMI off
	// the PPU's own dot/scanline counters.
	for i := 0; i < 341; i++ {
		if err := g.sched.Step(); err != nil {
			log.Printf("gosnesgui: %v", err)
			return nil
		}
	}
	return nil
}

func (g *game) processInput() {
	if g.pad == nil {
		return
	}
	g.pad.SetButton(controller.ButtonUp, ebiten.IsKeyPressed(ebiten.KeyArrowUp))
	g.pad.SetButton(controller.ButtonDown, ebiten.IsKeyPressed(ebiten.KeyArrowDown))
	g.pad.SetButton(controller.ButtonLeft, ebiten.IsKeyPressed(ebiten.KeyArrowLeft))
	g.pad.SetButton(controller.ButtonRight, ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	g.pad.SetButton(controller.ButtonA, ebiten.IsKeyPressed(ebiten.KeyX))
	g.pad.SetButton(controller.ButtonB, ebiten.IsKeyPressed(ebiten.KeyZ))
	g.pad.SetButton(controller.ButtonX, ebiten.IsKeyPressed(ebiten.KeyS))
	g.pad.SetButton(controller.ButtonY, ebiten.IsKeyPressed(ebiten.KeyA))
	g.pad.SetButton(controller.ButtonL, ebiten.IsKeyPressed(ebiten.KeyQ))
	g.pad.SetButton(controller.ButtonR, ebiten.IsKeyPressed(ebiten.KeyW))
	g.pad.SetButton(controller.ButtonSelect, ebiten.IsKeyPressed(ebiten.KeyShift))
	g.pad.SetButton(controller.ButtonStart, ebiten.IsKeyPressed(ebiten.KeyEnter))
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	fb := g.ppu.Framebuffer()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			v := fb[y*g.width+x]
			g.frame.Set(x, y, color.Gray{Y: v})
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(windowScale, windowScale)
	screen.DrawImage(g.frame, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * windowScale, g.height * windowScale
}

func main() {
	romPath := flag.String("rom", "", "path to a ROM image")
	mappingName := flag.String("mapping", "lorom", "ROM mapping: lorom or hirom")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gosnesgui: -rom is required")
	}

	rom, err := readROM(*romPath)
	if err != nil {
		log.Fatalf("gosnesgui: %v", err)
	}

	mapping := cartridge.LoROM
	if *mappingName == "hirom" {
		mapping = cartridge.HiROM
	}

	cart := cartridge.New(rom, mapping)
	p := ppu.New()
	a := apu.New()
	pad := &controller.Pad{}
	b := bus.New(cart, p, a, pad)

	c := cpu.New(b)
	c.Reset()

	sched := scheduler.New(c, b, p)

	ebiten.SetWindowTitle("gosnes")
	ebiten.SetWindowSize(ppu.Width()*windowScale, ppu.Height()*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(sched, c, p, pad)); err != nil {
		log.Fatalf("gosnesgui: %v", err)
	}
}

func readROM(path string) ([]byte, error) {
	return os.ReadFile(path)
}
