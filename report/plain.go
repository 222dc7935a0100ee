package report

import (
	"bufio"
	"fmt"
	"io"
)

// WritePlain writes the spec-required plain-text halt-time summary: one
// line per opcode, then totals and the average cycles per instruction.
func WritePlain(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)

	for _, stat := range s.Opcodes {
		if stat.Count == 0 {
			continue
		}
		fmt.Fprintf(bw, "%d %s instructions executed, using %d clocks\n",
			stat.Count, stat.Mnemonic, stat.Cycles)
	}

	fmt.Fprintf(bw, "%d total instructions executed, using %d total clocks\n",
		s.TotalInstructions, s.TotalCycles)
	fmt.Fprintf(bw, "average cycles per instruction: %.2f\n", s.AverageCPI())

	return bw.Flush()
}

// WriteMemoryDump writes the pre-run nonzero-cell memory dump.
func WriteMemoryDump(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}
