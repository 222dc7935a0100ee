package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jawr/pdp8sim/loader"
	"github.com/jawr/pdp8sim/pdp8"
	"github.com/jawr/pdp8sim/report"
)

// watchBatchSize is how many instructions the background worker executes
// between dashboard snapshots, keeping the UI responsive without pausing
// the interpreter after every single instruction.
const watchBatchSize = 2000

func newWatchCmd() *cobra.Command {
	var (
		start string
		sr    string
	)

	cmd := &cobra.Command{
		Use:   "watch <image>",
		Short: "Run an image with a live per-opcode dashboard",
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

			_, err = tea.NewProgram(newWatchModel(m)).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&start, "start", "0200", "starting address (leading 0 for octal, 0x for hex, otherwise decimal)")
	cmd.Flags().StringVar(&sr, "sr", "0", "switch register value")

	return cmd
}

type tickMsg report.Summary
type doneMsg report.Summary

type watchModel struct {
	m        *pdp8.Machine
	updates  chan report.Summary
	finished chan report.Summary
	summary  report.Summary
	halted   bool
}

func newWatchModel(m *pdp8.Machine) watchModel {
	return watchModel{
		m:        m,
		updates:  make(chan report.Summary),
		finished: make(chan report.Summary, 1),
	}
}

func (w watchModel) Init() tea.Cmd {
	go w.run()
	return waitForSummary(w.updates, w.finished)
}

// run executes the machine in fixed-size batches on its own goroutine,
// publishing a counter snapshot after each batch. The interpreter itself
// is still strictly single-threaded; this goroutine only exists so the
// terminal stays responsive between batches.
func (w watchModel) run() {
	for w.m.Run {
		for i := 0; i < watchBatchSize && w.m.Run; i++ {
			w.m.Step()
		}
		w.updates <- report.Collect(w.m)
	}
	w.finished <- report.Collect(w.m)
	close(w.updates)
}

func waitForSummary(updates <-chan report.Summary, finished <-chan report.Summary) tea.Cmd {
	return func() tea.Msg {
		select {
		case s, ok := <-updates:
			if ok {
				return tickMsg(s)
			}
		case s := <-finished:
			return doneMsg(s)
		}
		return nil
	}
}

func (w watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return w, tea.Quit
		}
	case tickMsg:
		w.summary = report.Summary(msg)
		return w, waitForSummary(w.updates, w.finished)
	case doneMsg:
		w.summary = report.Summary(msg)
		w.halted = true
		return w, nil
	}
	return w, nil
}

var watchTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

func (w watchModel) View() string {
	header := watchTitle.Render(fmt.Sprintf("pdp8sim watch — %d instructions, %d clocks",
		w.summary.TotalInstructions, w.summary.TotalCycles))

	var rows []string
	for _, stat := range w.summary.Opcodes {
		if stat.Count == 0 {
			continue
		}
		rows = append(rows, fmt.Sprintf("%-4s %8d %8d", stat.Mnemonic, stat.Count, stat.Cycles))
	}

	footer := "q: quit"
	if w.halted {
		footer = fmt.Sprintf("halted: %s — q: quit", w.summary.HaltReason)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		footer,
	)
}
