package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/types"
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Manage the comparison list",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add a university to the comparison list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, stop, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				defer stop()

				out, err := svc.Add(cmd.Context(), localSession, args[0], opts.localizer())
				if err != nil {
					if out.Message != "" {
						return fmt.Errorf("%s: %w", out.Message, err)
					}
					return err
				}
				return opts.write(cmd.OutOrStdout(), out, func(w io.Writer) {
					_, _ = fmt.Fprintln(w, out.Message)
				})
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"remove"},
			Short:   "Remove a university from the comparison list",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, stop, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				defer stop()

				cmp, _, err := svc.Remove(cmd.Context(), localSession, args[0], opts.localizer())
				if err != nil {
					return err
				}
				return opts.write(cmd.OutOrStdout(), cmp, func(w io.Writer) {
					writeComparison(w, cmp)
				})
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "Show the comparison list",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, stop, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				defer stop()

				cmp, err := svc.Comparison(cmd.Context(), localSession, opts.localizer())
				if err != nil {
					return err
				}
				return opts.write(cmd.OutOrStdout(), cmp, func(w io.Writer) {
					writeComparison(w, cmp)
				})
			},
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print the side-by-side comparison",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, stop, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				defer stop()

				loc := opts.localizer()
				table, err := svc.Table(cmd.Context(), localSession, loc)
				if errors.Is(err, compare.ErrNotEnoughSelected) {
					return fmt.Errorf("%s: %w", loc.T("compare.toast.not-enough"), err)
				}
				if err != nil {
					return err
				}
				return opts.write(cmd.OutOrStdout(), table, func(w io.Writer) {
					writeTable(w, table)
				})
			},
		},
		&cobra.Command{
			Use:   "candidates [term]",
			Short: "List universities that can still be added",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, stop, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				defer stop()

				term := ""
				if len(args) == 1 {
					term = args[0]
				}
				cards, err := svc.Candidates(cmd.Context(), localSession, term, opts.localizer())
				if err != nil {
					return err
				}
				return opts.write(cmd.OutOrStdout(), cards, func(w io.Writer) {
					writeCards(w, cards)
				})
			},
		},
	)
	return cmd
}

func writeComparison(w io.Writer, cmp types.Comparison) {
	_, _ = fmt.Fprintf(w, "%d/%d selected\n", cmp.Count, cmp.Limit)
	for _, c := range cmp.Items {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
	}
}

func writeTable(w io.Writer, t compare.Table) {
	_, _ = fmt.Fprint(w, "\t")
	for _, c := range t.Columns {
		_, _ = fmt.Fprintf(w, "%s\t", c.Name)
	}
	_, _ = fmt.Fprintln(w)
	for _, s := range t.Sections {
		_, _ = fmt.Fprintf(w, "[%s]\n", s.Title)
		for _, r := range s.Rows {
			_, _ = fmt.Fprintf(w, "%s\t", r.Label)
			for _, v := range r.Values {
				_, _ = fmt.Fprintf(w, "%s\t", v)
			}
			_, _ = fmt.Fprintln(w)
		}
	}
}
