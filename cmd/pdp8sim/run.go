package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jawr/pdp8sim/loader"
	"github.com/jawr/pdp8sim/pdp8"
	"github.com/jawr/pdp8sim/report"
)

func newRunCmd() *cobra.Command {
	var (
		start           string
		sr              string
		plain           bool
		dump            bool
		maxInstructions int
	)

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load an image and execute it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := defaultLogger()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("loading image: %w", err)
			}
			defer f.Close()

			m := pdp8.NewMachine()
			if err := loader.LoadHex(f, &m.Memory); err != nil {
				return fmt.Errorf("loading image: %w", err)
			}

			if dump {
				report.WriteMemoryDump(os.Stdout, report.MemoryDump(&m.Memory))
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
			m.MaxInstructions = maxInstructions
			m.Logger = logger

			logger.Printf("starting at %04o, SR=%04o", m.PC, m.SR)

			m.RunToHalt()

			logger.Printf("halted: %s", m.HaltReason)

			summary := report.Collect(m)
			if plain || !isTTY(os.Stdout) {
				return report.WritePlain(os.Stdout, summary)
			}
			return report.WriteStyled(os.Stdout, summary)
		},
	}

	cmd.Flags().StringVar(&start, "start", "0200", "starting address (leading 0 for octal, 0x for hex, otherwise decimal)")
	cmd.Flags().StringVar(&sr, "sr", "0", "switch register value")
	cmd.Flags().BoolVar(&plain, "plain", false, "force plain-text output, no styling")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the pre-run nonzero-cell memory dump")
	cmd.Flags().IntVar(&maxInstructions, "max-instructions", 0, "safety cap on instructions executed (0 = unbounded)")

	return cmd
}

func parseWord(s string) (pdp8.Word, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return pdp8.Word(v) & pdp8.WordMask, nil
}
