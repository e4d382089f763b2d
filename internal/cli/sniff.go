package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ralt/bundlediff/internal/loader"
	"github.com/ralt/bundlediff/internal/models"
)

// NewSniffCmd creates the sniff command
func NewSniffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff FILE...",
		Short: "Report whether files are Bundle or Package JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ld := loader.NewLoader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for _, path := range args {
				in, err := ld.Load(cmd.Context(), path)
				switch {
				case models.IsErrorType(err, models.ErrInvalidJSON):
					fmt.Fprintf(out, "%s: Invalid JSON\n", path)
					continue
				case err != nil:
					return err
				}

				variant := loader.Classify(in.Root)
				if variant == models.VariantUnknown {
					fmt.Fprintf(out, "%s: Invalid JSON\n", path)
					continue
				}
				fmt.Fprintf(out, "%s: Valid %s JSON\n", path, variant.Label())
			}
			return nil
		},
	}
}
