package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitguide/internal/catalog"
	"gitguide/internal/domain"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a step catalog",
		Long: `Parse a step catalog and check that every step has a title and
that every diagram zone is highlighted by at least one step.

Without a file the configured catalog is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			var (
				c      *catalog.Catalog
				source string
				err    error
			)
			if len(args) == 1 {
				source = args[0]
				c, err = catalog.LoadFile(source)
			} else {
				c, source, err = catalog.Resolve(a.cfg.Catalog)
			}
			if err != nil {
				return err
			}

			if err := catalog.Validate(c); err != nil {
				a.logger.Warn("catalog failed validation", "source", source, "error", err)
				return fmt.Errorf("%s: %w", source, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps, all %d zones covered\n",
				source, c.Len(), len(domain.AllHighlightTargets()))
			return nil
		}),
	}
}
