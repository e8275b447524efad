package cli

import (
	"fmt"
	"io"

	"github.com/okian/campus/internal/domain/scoring"
	"github.com/spf13/cobra"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var form scoring.Form
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a profile score from GPA and one test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := scoring.Score(form.Input())
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "%s:\t%d / %d\n", opts.localizer().T("score.label"), r.Score, r.Max)
				_, _ = fmt.Fprintf(w, "GPA:\t%.1f\n", r.GPAPoints)
				_, _ = fmt.Fprintf(w, "Test:\t%.1f\n", r.TestPoints)
			})
		},
	}
	cmd.Flags().StringVar(&form.GPA, "gpa", "", "GPA on a 4.0 scale")
	cmd.Flags().StringVar(&form.TestType, "test", "", "Test taken: SAT or ACT")
	cmd.Flags().StringVar(&form.SATMath, "sat-math", "", "SAT math section")
	cmd.Flags().StringVar(&form.SATEBRW, "sat-ebrw", "", "SAT reading and writing section")
	cmd.Flags().StringVar(&form.ACT, "act", "", "ACT composite")
	return cmd
}
