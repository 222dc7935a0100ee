package main

import (
	"fmt"
	"os"

	term "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"

	"github.com/davecgh/go-spew/spew"

	"github.com/jawr/pdp8sim/loader"
	"github.com/jawr/pdp8sim/pdp8"
)

func newStepCmd() *cobra.Command {
	var (
		start string
		sr    string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "step <image>",
		Short: "Single-step the interpreter in an interactive terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("loading image: %w", err)
			}
			defer f.Close()

			m := pdp8.NewMachine()
			if err := loader.LoadHex(f, &m.Memory); err != nil {
				return fmt.Errorf("loading image: %w", err)
			}

			startAddr, err := parseWord(start)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			srValue, err := parseWord(sr)
			if err != nil {
				return fmt.Errorf("parsing --sr: %w", err)
			}

			m.Reset()
			m.PC = startAddr
			m.SR = srValue

			return runStepViewer(m, debug)
		},
	}

	cmd.Flags().StringVar(&start, "start", "0200", "starting address (leading 0 for octal, 0x for hex, otherwise decimal)")
	cmd.Flags().StringVar(&sr, "sr", "0", "switch register value")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump full machine state on every step")

	return cmd
}

// runStepViewer renders register state and single-steps on Enter, exiting
// on Ctrl-C. Once the machine halts, Enter no longer steps and the status
// line shows the halt reason until Ctrl-C. Adapted from the teacher's
// cmd/tests step-mode loop; here stepping is the only mode since a PDP-8
// program has no real-time clock to free-run against.
func runStepViewer(m *pdp8.Machine, debug bool) error {
	if err := term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer term.Close()

	var trap pdp8.TrapDetector

	for {
		draw(m, &trap)

		ev := term.PollEvent()
		if ev.Type != term.EventKey {
			continue
		}
		if ev.Key == term.KeyCtrlC {
			return nil
		}
		if ev.Key != term.KeyEnter {
			continue
		}

		if !m.Run {
			continue
		}

		trap.Push(m.PC, m.Memory.Read(m.PC))
		if debug {
			term.Close()
			spew.Dump(m)
			if err := term.Init(); err != nil {
				return err
			}
		}
		m.Step()

		if !m.Run {
			draw(m, &trap)
		}
	}
}

func draw(m *pdp8.Machine, trap *pdp8.TrapDetector) {
	term.Clear(term.ColorDefault, term.ColorDefault)

	dis := m.Disassemble(m.PC)
	status := fmt.Sprintf(
		"PC=%04o IR=%04o AC=%04o L=%d SR=%04o CPage=%02o  next: %s",
		m.PC, m.IR, m.AC, boolBit(m.L), m.SR, m.CPage, dis.Text,
	)
	if trap.Suspected() {
		status += "  [possible trap]"
	}
	if !m.Run {
		status += "  HALTED: " + m.HaltReason.String()
	}

	drawString(0, 0, status)
	drawString(0, 2, "Enter: step    Ctrl-C: quit")

	term.Flush()
}

func drawString(x, y int, s string) {
	for i, r := range s {
		term.SetCell(x+i, y, r, term.ColorDefault, term.ColorDefault)
	}
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
