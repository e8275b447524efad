// Package cli implements the campusctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/okian/campus/internal/adapters/repository"
	service "github.com/okian/campus/internal/app"
	"github.com/okian/campus/internal/domain/catalog"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/pkg/logger"
	"github.com/spf13/cobra"
)

// EnvDB overrides the default database path.
const EnvDB = "CAMPUS_DB"

// localSession keys the comparison list kept by the CLI.
const localSession = "local"

// Output formats.
const (
	formatJSON = "json"
	formatText = "text"
)

//nolint:gochecknoglobals // shared codec config
var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	db      string
	catalog string
	lang    string
	format  string
}

// NewRootCmd builds the top-level command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "campusctl",
		Short:         "Browse, compare and score US universities",
		Long:          "Search the university catalog, keep a comparison list of up to four universities and compute a profile score. The comparison list is kept in a local SQLite file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.format != formatJSON && opts.format != formatText {
				return fmt.Errorf("unknown format %q: use json or text", opts.format)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.db, "db", "d", "", "Database path (default: $"+EnvDB+" or ~/.campus/campus.db)")
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "Catalog JSON file (default: bundled catalog)")
	root.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "ko", "Display language: ko or en")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "Output format: json or text")

	root.AddCommand(
		newSearchCmd(opts),
		newShowCmd(opts),
		newCompareCmd(opts),
		newScoreCmd(opts),
	)
	return root
}

// Execute runs the root command and reports failures on stderr.
func Execute(ctx context.Context) int {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
	return 0
}

func (o *rootOptions) dbPath() string {
	if o.db != "" {
		return o.db
	}
	if env := os.Getenv(EnvDB); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".campus", "campus.db")
}

func (o *rootOptions) localizer() *i18n.Localizer {
	return i18n.Lookup(o.lang)
}

// open starts a service over the local database. The returned func stops it.
func (o *rootOptions) open(ctx context.Context) (*service.Service, func(), error) {
	cat, err := catalog.Open(o.catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	store, err := repository.NewSQLiteStore(ctx, o.dbPath())
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc := service.New(
		service.WithLogger(logger.Nop()),
		service.WithCatalog(cat),
		service.WithStore(store, repository.DriverSQLite),
	)
	if err := svc.Start(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return svc, svc.Stop, nil
}

// write prints v as JSON or hands a tab writer to text.
func (o *rootOptions) write(w io.Writer, v any, text func(tw io.Writer)) error {
	if o.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}
