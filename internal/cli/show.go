package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/campus/internal/domain/types"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a university profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, stop, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			p, err := svc.Profile(cmd.Context(), localSession, args[0], opts.localizer())
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), p, func(w io.Writer) {
				writeProfile(w, p)
			})
		},
	}
}

func writeProfile(w io.Writer, p types.Profile) {
	rows := [][2]string{
		{"Name", p.Name},
		{"English name", p.EnglishName},
		{"Location", p.Location},
		{"Type", p.Type},
		{"Size", p.Size},
		{"Tuition", p.TuitionLabel},
		{"SAT", p.SATRange},
		{"ACT", p.ACTRange},
		{"GPA", p.EstimatedGPA},
		{"Graduation", p.GraduationRate},
		{"Degrees", p.DegreeTypes},
		{"Programs", strings.Join(p.Programs, ", ")},
		{"Compared", fmt.Sprint(p.InComparison)},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
	}
	for _, b := range p.Requirements {
		_, _ = fmt.Fprintf(w, "  %s:\t%s\t(%s)\n", b.Label, b.Status, b.Kind)
	}
}
