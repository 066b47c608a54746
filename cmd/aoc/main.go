// Command aoc runs the Advent of Code 2023 solvers against puzzle
// inputs. Inputs live in a directory (default "input") as dayNN.txt;
// "aoc run N" solves one day, "aoc all" solves every registered day in
// order.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	log      *zap.Logger
	inputDir string
	input    string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2023 solvers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg = zap.NewDevelopmentConfig()
			}
			log, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.inputDir, "dir", "d", "input", "directory holding dayNN.txt inputs")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging")

	runCmd := &cobra.Command{
		Use:   "run <day>",
		Short: "solve one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number: %q", args[0])
			}
			d, ok := days[n]
			if !ok {
				return fmt.Errorf("no solver for day %d", n)
			}
			return a.runDay(cmd, n, d)
		},
	}
	runCmd.Flags().StringVarP(&a.input, "input", "i", "", "input file (overrides --dir)")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "solve every registered day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, 0, len(days))
			for n := range days {
				nums = append(nums, n)
			}
			sort.Ints(nums)
			for _, n := range nums {
				if err := a.runDay(cmd, n, days[n]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.AddCommand(runCmd, allCmd)
	return root
}

// runDay reads the day's input, runs both parts, and prints the answers.
func (a *app) runDay(cmd *cobra.Command, n int, d day) error {
	path := a.input
	if path == "" {
		path = filepath.Join(a.inputDir, fmt.Sprintf("day%02d.txt", n))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input for day %d: %w", n, err)
	}
	input := string(raw)
	log := a.log.With(zap.Int("day", n), zap.String("puzzle", d.name))

	start := time.Now()
	p1, err := d.part1(input)
	if err != nil {
		return fmt.Errorf("day %d part 1: %w", n, err)
	}
	p2, err := d.part2(input)
	if err != nil {
		return fmt.Errorf("day %d part 2: %w", n, err)
	}
	log.Info("solved",
		zap.Int("part1", p1),
		zap.Int("part2", p2),
		zap.Duration("elapsed", time.Since(start)))
	fmt.Fprintf(cmd.OutOrStdout(), "day %02d %-12s part1=%d part2=%d\n", n, d.name, p1, p2)
	return nil
}
