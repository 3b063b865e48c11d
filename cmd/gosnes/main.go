// Command gosnes is the headless CLI front end: load a ROM, step the
// core for a bounded number of frames or until STP, optionally emit a
// trace. It replaces the teacher's stdlib flag-based main with cobra's
// multi-command pattern, the shape oisee-z80-optimizer's cmd/z80opt
// already uses for exactly this kind of tool (SPEC_FULL.md sec 3).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"gosnes/internal/apu"
	"gosnes/internal/bus"
	"gosnes/internal/cartridge"
	"gosnes/internal/cpu"
	"gosnes/internal/ppu"
	"gosnes/internal/scheduler"
	"gosnes/internal/trace"
	"gosnes/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gosnes",
		Short: "gosnes — a 65C816 CPU and memory-bus core for the SNES",
	}

	var (
		mapping  string
		frames   int
		maxSteps int
		doTrace  bool
		ringSize int
	)

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Load a ROM and step the core until STP or a step/frame limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runROM(args[0], mapping, frames, maxSteps, doTrace, ringSize)
		},
	}
	runCmd.Flags().StringVar(&mapping, "mapping", "lorom", "ROM mapping: lorom or hirom")
	runCmd.Flags().IntVar(&frames, "frames", 60, "number of PPU frames to run (0 = until STP/max-steps)")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 10_000_000, "hard cap on CPU instructions, to bound a runaway program")
	runCmd.Flags().BoolVar(&doTrace, "trace", false, "print the fetch trace ring to stderr on exit")
	runCmd.Flags().IntVar(&ringSize, "trace-ring", 64, "number of instructions the trace ring retains")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print gosnes version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			version.PrintBuildInfo()
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runROM(path, mappingName string, frames, maxSteps int, doTrace bool, ringSize int) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gosnes: read %s: %w", path, err)
	}

	mapping := cartridge.LoROM
	if mappingName == "hirom" {
		mapping = cartridge.HiROM
	}

	cart := cartridge.New(rom, mapping)
	p := ppu.New()
	a := apu.New()
	b := bus.New(cart, p, a, nil)

	var ring *trace.Ring
	if doTrace {
		ring = trace.NewRing(ringSize)
		b.SetHook(ring)
	}

	c := cpu.New(b)
	if doTrace {
		c.SetHook(ring)
	}
	c.Reset()

	sched := scheduler.New(c, b, p)

	framesRun := 0
	wasInVBlank := false
	for step := 0; step < maxSteps; step++ {
		if c.State() == cpu.Stopped {
			break
		}
		if err := sched.Step(); err != nil {
			printTrace(ring)
			return err
		}
		inVBlank := p.InVBlank()
		if inVBlank && !wasInVBlank {
			framesRun++
			if frames > 0 && framesRun >= frames {
				break
			}
		}
		wasInVBlank = inVBlank
	}

	log.Printf("gosnes: stopped after run (state=%v)", c.State())
	printTrace(ring)
	return nil
}

func printTrace(ring *trace.Ring) {
	if ring == nil {
		return
	}
	for _, e := range ring.Recent() {
		fmt.Fprintf(os.Stderr, "%02X:%04X  opcode $%02X\n", e.PBR, e.PC, e.Opcode)
	}
}
