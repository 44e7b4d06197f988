package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Deltawerks/starprint/internal/adapters/api"
	"github.com/Deltawerks/starprint/internal/adapters/download"
	"github.com/Deltawerks/starprint/internal/adapters/preview"
	"github.com/Deltawerks/starprint/internal/adapters/tui"
	"github.com/Deltawerks/starprint/internal/config"
	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "starprint",
	Short: "Browse and export the Star Citizen item catalog",
	Long: `StarPrint is a terminal client for the StarPrint data service.
It browses the item catalog by category, searches across all items,
generates thumbnails, and exports items as printable OBJ models.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	defaults := config.Default()

	rootCmd.Flags().String("server", defaults.ServerURL, "base URL of the StarPrint data service")
	rootCmd.Flags().String("downloads", defaults.DownloadDir, "directory receiving exported files")
	rootCmd.Flags().String("viewer", "", "command used to open 3D previews (default: system opener)")
	rootCmd.Flags().String("log-file", defaults.LogFile, "log file path")
	rootCmd.Flags().String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")

	viper.BindPFlag("server", rootCmd.Flags().Lookup("server"))
	viper.BindPFlag("downloads", rootCmd.Flags().Lookup("downloads"))
	viper.BindPFlag("viewer", rootCmd.Flags().Lookup("viewer"))
	viper.BindPFlag("log_file", rootCmd.Flags().Lookup("log-file"))
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))

	viper.SetEnvPrefix("STARPRINT")
	viper.AutomaticEnv()
}

func loadConfig() (config.Config, error) {
	// A .env next to the binary is a convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Config{
		ServerURL:     viper.GetString("server"),
		DownloadDir:   viper.GetString("downloads"),
		ViewerCommand: viper.GetString("viewer"),
		LogFile:       viper.GetString("log_file"),
		LogLevel:      viper.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, OutputPath: cfg.LogFile}); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logging.Sync()

	logging.Info("starting",
		zap.String("server", cfg.ServerURL),
		zap.String("downloads", cfg.DownloadDir))

	backend := api.New(cfg.ServerURL)
	session := domain.NewSession()
	saver := download.NewSaver(backend, cfg.DownloadDir)
	opener := preview.NewOpener(cfg.ViewerCommand)

	app := tui.NewApp(backend, session, saver, opener, cfg.ServerURL)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("tui exited", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
