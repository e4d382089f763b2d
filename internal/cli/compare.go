package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ralt/bundlediff/internal/differ"
	"github.com/ralt/bundlediff/internal/loader"
	"github.com/ralt/bundlediff/internal/models"
	"github.com/ralt/bundlediff/internal/render"
	"github.com/ralt/bundlediff/internal/signer"
	"github.com/ralt/bundlediff/internal/utils"
)

// NewCompareCmd creates the compare command
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Compare two bundle or package JSON documents",
		Long: `Loads both documents, detects whether they are Bundle or Package
JSON, and prints every record that was added, removed or changed.
Use "-" to read one of the inputs from standard input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}

			// Validate configuration
			if err := validateConfig(config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", redacted(config))

			return runCompare(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), config)
		},
	}

	// Comparison flags
	cmd.Flags().StringP("type", "t", "auto", "Document type: auto, bundle or package")

	// Output flags
	cmd.Flags().StringP("format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().StringP("sort", "s", "", "Sort by column (name, symbolicName, status, version1, state1, ...)")
	cmd.Flags().String("order", "asc", "Sort direction: asc or desc")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Bool("no-color", false, "Disable colors and mark changed cells with *")

	// GPG signing flags
	cmd.Flags().StringP("gpg-key", "k", "", "Path to GPG private key used to sign the report")
	cmd.Flags().StringP("gpg-passphrase", "p", "", "GPG key passphrase")

	return cmd
}

func redacted(config *models.CompareConfig) models.CompareConfig {
	c := *config
	if c.GPGPassphrase != "" {
		c.GPGPassphrase = "***"
	}
	return c
}

func runCompare(ctx context.Context, stdin io.Reader, stdout io.Writer, config *models.CompareConfig) error {
	// Step 1: Load both inputs
	logrus.Infof("Loading %s and %s", config.LeftPath, config.RightPath)
	ld := loader.NewLoader(stdin)

	var left, right *loader.Input
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = ld.Load(gctx, config.LeftPath)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = ld.Load(gctx, config.RightPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Step 2: Pick the variant
	variant, err := models.ParseVariant(config.Variant)
	if err != nil {
		return &models.DiffError{Type: models.ErrInvalidConfig, Err: err}
	}
	if variant == models.VariantUnknown {
		variant, err = loader.Pair(loader.Classify(left.Root), loader.Classify(right.Root))
		if err != nil {
			return err
		}
		logrus.Debugf("Detected %s documents", variant)
	}

	leftDoc, err := loader.Extract(left, variant)
	if err != nil {
		return err
	}
	rightDoc, err := loader.Extract(right, variant)
	if err != nil {
		return err
	}

	// Step 3: Compare
	logrus.Infof("Comparing %d and %d %s records", leftDoc.Len(), rightDoc.Len(), variant)
	diffs := sortState(config).Apply(differ.Compare(leftDoc, rightDoc))

	report := &models.Report{
		Variant:     variant,
		Left:        models.InputSummary{Path: left.Path, Fingerprint: left.Fingerprint, Count: leftDoc.Len()},
		Right:       models.InputSummary{Path: right.Path, Fingerprint: right.Fingerprint, Count: rightDoc.Len()},
		Summary:     models.Summarize(diffs),
		Differences: diffs,
	}

	if len(diffs) == 0 {
		logrus.Info("No differences found")
	} else {
		logrus.Infof("Found %d differences", len(diffs))
	}

	// Step 4: Render
	renderer, err := render.New(render.Format(config.Format), render.Options{
		NoColor: config.NoColor || config.OutputPath != "",
	})
	if err != nil {
		return &models.DiffError{Type: models.ErrInvalidConfig, Err: err}
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, report); err != nil {
		return &models.DiffError{
			Type: models.ErrRender,
			Err:  fmt.Errorf("failed to render %s report: %w", renderer.Format(), err),
		}
	}

	if config.OutputPath == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if err := utils.WriteFile(config.OutputPath, buf.Bytes(), 0644); err != nil {
		return &models.DiffError{
			Type:  models.ErrRender,
			Input: config.OutputPath,
			Err:   fmt.Errorf("failed to write report: %w", err),
		}
	}
	logrus.Infof("Report written to %s", config.OutputPath)

	// Step 5: Sign
	if config.GPGKeyPath == "" {
		return nil
	}

	gpgSigner, err := signer.NewGPGSigner(config.GPGKeyPath, config.GPGPassphrase)
	if err != nil {
		return &models.DiffError{
			Type: models.ErrSigning,
			Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
		}
	}

	sigPath, err := signer.SignFile(gpgSigner, config.OutputPath)
	if err != nil {
		return &models.DiffError{
			Type:  models.ErrSigning,
			Input: config.OutputPath,
			Err:   err,
		}
	}
	logrus.Infof("Report signed by %s: %s", gpgSigner.Identity(), sigPath)

	keyPath, err := signer.ExportPublicKey(gpgSigner, config.OutputPath)
	if err != nil {
		return &models.DiffError{
			Type:  models.ErrSigning,
			Input: config.OutputPath,
			Err:   err,
		}
	}
	logrus.Infof("Public key written to %s", keyPath)

	return nil
}
