package cmd

import (
	"context"
	"fmt"
	"io"

	"customer-importer/core/config"
	"customer-importer/core/storage"
	"customer-importer/feature/customers/importer"
	"customer-importer/feature/customers/provider"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importCount   int
	importFixture string
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import customers from the configured provider",
	Long: `Fetches customers from the provider configured by PROVIDER_API_URL and
upserts them by email. Existing customers are overwritten; only new ones are counted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		count := importCount
		if !cmd.Flags().Changed("count") {
			count = cfg.Importer.DefaultCount
		}

		if err := runImport(cmd.Context(), cfg, count, importFixture, cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Import failed: %v\n", err)
			return err
		}
		return nil
	},
}

// runImport performs one import and reports the outcome on out.
func runImport(ctx context.Context, cfg *config.Config, count int, fixture string, out io.Writer) error {
	if count <= 0 {
		return fmt.Errorf("count must be a positive number, got %d", count)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := bootstrap(cfg, true)
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	var src provider.DataProvider
	if fixture != "" {
		f, err := provider.NewFixtureFile(fixture)
		if err != nil {
			return err
		}
		src = f
	} else {
		src = provider.NewRandomUser(cfg.Provider, d.logger)
	}

	opts := []importer.Option{
		importer.WithHasher(importer.NewBcryptHasher(cfg.Importer.PasswordCost)),
		importer.WithDefaultCount(cfg.Importer.DefaultCount),
	}
	if cfg.Importer.Archive {
		archiver, err := newArchiver(ctx, cfg)
		if err != nil {
			return err
		}
		opts = append(opts, importer.WithArchiver(archiver))
	}

	imp := importer.New(src, d.store, d.logger, opts...)

	d.logger.Info("Starting customer import", zap.Int("count", count))
	n, err := imp.Import(ctx, count)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported or updated %d customers.\n", n)
	return nil
}

func newArchiver(ctx context.Context, cfg *config.Config) (*importer.ObjectArchiver, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return nil, err
	}
	return importer.NewObjectArchiver(client, cfg.Storage.Bucket, cfg.Importer.ArchivePrefix), nil
}

func init() {
	importCmd.Flags().IntVar(&importCount, "count", importer.DefaultCount, "Number of customers to request")
	importCmd.Flags().StringVar(&importFixture, "fixture", "", "Read customers from a randomuser-shaped JSON file instead of the provider")
	RootCmd.AddCommand(importCmd)
}
