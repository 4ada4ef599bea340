package cmd

import (
	"fmt"
	"io"
	"strings"

	"customer-importer/core/config"
	"customer-importer/core/database"
	"customer-importer/feature/customers/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the customers table against the expected schema",
	Long:  `Connects to the configured database and reports any column of the customers table that is missing.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runIntegrity(cfg, cmd.OutOrStdout())
	},
}

func runIntegrity(cfg *config.Config, out io.Writer) error {
	d, err := bootstrap(cfg, false)
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	table := models.Customer{}.TableName()
	missing, err := database.MissingColumns(d.store.DB(), table, models.Columns())
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", table, err)
	}

	if len(missing) > 0 {
		d.logger.Warn("Schema check failed", zap.String("table", table), zap.Strings("missing", missing))
		return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
	}

	d.logger.Info("Schema check passed", zap.String("table", table))
	fmt.Fprintf(out, "Table %s has all %d expected columns.\n", table, len(models.Columns()))
	return nil
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}
