package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/exam"
	"github.com/mouse-blink/exam/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidate test ids in declaration order",
		Long: `Prints the id of every test execution the current filter would allow,
one per line, expanding cartesian tests into their combinations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listCandidates(cmd, exam.Default(), domain.ParseFilter(filterFlag))

			return nil
		},
	}

	return cmd
}

// listCandidates walks the registry the same way the runner does, printing
// ids instead of executing bodies, so the listing matches what a run with
// the same filter would execute.
func listCandidates(cmd *cobra.Command, registry *domain.Registry, filter domain.Filter) {
	for d := range registry.All() {
		if d.Kind != domain.KindCartesian {
			if id := d.BaseID(); filter.Allows(id) {
				cmd.Println(id)
			}

			continue
		}

		if d.Space.Size() == 0 {
			continue
		}

		for {
			id := d.BaseID() + d.Space.Suffix()

			if !filter.Allows(id) {
				d.Space.Reset()
				break
			}

			cmd.Println(id)

			if !d.Space.Advance() {
				d.Space.Reset()
				break
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
