package main

import (
	"context"
	"database/sql"
	"os"

	"task_tracker/internal/cli"
	"task_tracker/internal/logger"
	"task_tracker/internal/repository"
	repodb "task_tracker/internal/repository/db"
	"task_tracker/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "task_tracker",
	Short:         "Single-session console task tracker",
	Long:          "Logs one user in against a flat credential file and serves an interactive task menu.",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Flags().StringVarP(&configDir, "config", "c", "configs", "directory containing config.yml")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfgErr := loadConfig()

	log := logger.Get(viper.GetString("log_level"))
	if cfgErr != nil {
		log.Warnw("config file not loaded; using defaults", "dir", configDir, "err", cfgErr)
	}

	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init audit sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close audit sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(
		viper.GetString("storage.users_file"),
		viper.GetString("storage.tasks_file"),
		db,
	)
	// Seeds admin/password when the credential file does not exist yet.
	if err := repos.Credentials.Load(); err != nil {
		log.Fatalw("failed to load credentials", "err", err)
	}

	services := service.NewService(repos, log, service.ReportPaths{
		TaskOverview: viper.GetString("reports.task_overview"),
		UserOverview: viper.GetString("reports.user_overview"),
	})

	session := cli.New(services, log, os.Stdin, os.Stdout)
	return session.Run(context.Background())
}

// loadConfig reads configs/config.yml; every key has a default so a
// missing file only costs a warning.
func loadConfig() error {
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("storage.users_file", "user.txt")
	viper.SetDefault("storage.tasks_file", "tasks.txt")
	viper.SetDefault("storage.audit_db", "audit.db")
	viper.SetDefault("reports.task_overview", "task_overview.txt")
	viper.SetDefault("reports.user_overview", "user_overview.txt")

	viper.AddConfigPath(configDir)
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func openDB(log *logger.Logger) (*sql.DB, error) {
	path := viper.GetString("storage.audit_db")
	if path == "" {
		log.Infow("storage.audit_db not set; using default file", "default", "audit.db")
		path = "audit.db"
	}
	return repodb.InitDB(path)
}
