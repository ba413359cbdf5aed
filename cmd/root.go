// Package cmd provides the cobra entry point a test program hands control
// to from its main function.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/exam"
	"github.com/mouse-blink/exam/internal/controller"
	"github.com/mouse-blink/exam/internal/domain"
)

var filterFlag string
var plainFlag bool

// failedTests holds the failure count of the last run, reported as the
// process exit status by Execute.
var failedTests int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Run the tests this program declares",
		Long: `Runs every test registered by the program, in declaration order, and
reports pass/fail status with timing and a tallied summary.

The filter expression selects which tests run. Patterns are delimited by ':'
and checked against each test's Suite_Name id; '*' substitutes for any run of
characters. Patterns after the first '-' exclude instead of include:

  exam --filter 'Io*:Net*-*Slow*'

runs every Io and Net test whose id does not contain "Slow".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewUI(cmd, !plainFlag && controller.IsTTY(os.Stdout))
			if err := ui.Start(); err != nil {
				return err
			}

			runner := domain.NewRunner(exam.Default(), domain.ParseFilter(filterFlag), ui)
			report := runner.Run()

			if err := ui.Close(); err != nil {
				return err
			}

			failedTests = report.ExitCode()

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&filterFlag, "filter", "f", "", "include/exclude filter expression checked against test ids")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "force plain line output even on a terminal")

	return cmd
}

// Execute runs the root command and exits with the number of failed tests
// (0 when fully green). This is called by the test program's main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	if failedTests != 0 {
		os.Exit(failedTests)
	}
}
