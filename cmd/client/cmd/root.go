package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"escuela/cmd/client/cmd/debt"
	"escuela/cmd/client/cmd/materia"
	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"
	"escuela/internal/app/client/config"
	"escuela/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	jsonOutput bool
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "escuela",
	Short: "escuela - manage the subject catalog from the command line",
	Long: `escuela reads and edits the materias document used by the escuela backend.

Commands work on the JSON file directly. Set server_address (or --server) to
go through a running server instead, and use --dry-run to try a change
without writing anything.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewWriter(os.Stderr, cfg.Env, cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := client.New(ctx, cfg, log, client.Options{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if app.Mode() == client.ModeDryRun {
		fmt.Fprintln(os.Stderr, "dry run: changes are not saved")
	}

	ctx = client.WithApp(ctx, app)
	ctx = output.WithPrinter(ctx, output.New(os.Stdout, jsonOutput))
	cmd.SetContext(ctx)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".escuela"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.escuela/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON even on a terminal")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "work on an in-memory copy of the document")
	rootCmd.PersistentFlags().String("file", "", "materias JSON document")
	rootCmd.PersistentFlags().String("server", "", "escuela server address, e.g. localhost:3000")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("MATERIAS_FILE", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("SERVER_ADDRESS", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(materia.MateriaCmd)
	materia.MateriaCmd.AddCommand(materia.ListCmd)
	materia.MateriaCmd.AddCommand(materia.GetCmd)
	materia.MateriaCmd.AddCommand(materia.CreateCmd)
	materia.MateriaCmd.AddCommand(materia.UpdateCmd)
	materia.MateriaCmd.AddCommand(materia.DeleteCmd)
	materia.MateriaCmd.AddCommand(materia.N8nCmd)

	rootCmd.AddCommand(debt.DebtCmd)
	debt.DebtCmd.AddCommand(debt.ListCmd)
}
