package cli

import (
	"fmt"
	"io"

	"github.com/okian/campus/internal/domain/filter"
	"github.com/okian/campus/internal/domain/sorting"
	"github.com/okian/campus/internal/domain/types"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	c := filter.DefaultCriteria()
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "List universities matching the filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.SearchTerm = args[0]
			}
			svc, stop, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			cards := svc.Search(c, opts.localizer())
			return opts.write(cmd.OutOrStdout(), cards, func(w io.Writer) {
				writeCards(w, cards)
			})
		},
	}

	keys := lo.Map(sorting.Keys()[1:], func(k sorting.Key, _ int) string { return string(k) })
	cmd.Flags().StringSliceVarP(&c.Types, "type", "t", nil, "University type: Private, Public (repeatable)")
	cmd.Flags().Float64Var(&c.Tuition.Min, "tuition-min", c.Tuition.Min, "Minimum tuition")
	cmd.Flags().Float64Var(&c.Tuition.Max, "tuition-max", c.Tuition.Max, "Maximum tuition")
	cmd.Flags().Float64Var(&c.SAT.Min, "sat-min", c.SAT.Min, "Minimum SAT")
	cmd.Flags().Float64Var(&c.SAT.Max, "sat-max", c.SAT.Max, "Maximum SAT")
	cmd.Flags().StringVarP(&c.SortBy, "sort", "s", "", fmt.Sprintf("Sort order: %v (default: recommended)", keys))
	return cmd
}

func writeCards(w io.Writer, cards []types.Card) {
	_, _ = fmt.Fprintln(w, "ID\tNAME\tLOCATION\tTUITION\tSAT\tTYPE")
	for _, c := range cards {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Location, c.TuitionLabel, c.SATRange, c.Type)
	}
}
