// Package main provides the one-shot prediction CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/database"
	"github.com/yourusername/puckcast/internal/goalie"
	applogger "github.com/yourusername/puckcast/internal/logger"
	"github.com/yourusername/puckcast/internal/models"
	"github.com/yourusername/puckcast/internal/nhl"
	"github.com/yourusername/puckcast/internal/predictor"
	"github.com/yourusername/puckcast/internal/repository"
	"github.com/yourusername/puckcast/internal/service"
	"github.com/yourusername/puckcast/internal/storage"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	dryRun     bool
)

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the slate without persisting it")
}

var rootCmd = &cobra.Command{
	Use:   "predict [YYYY-MM-DD]",
	Short: "Predict NHL game outcomes for a date",
	Long: `Fetches the NHL schedule for the given date (tomorrow when omitted),
scores every matchup and prints the slate with win probabilities and
American moneyline odds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().UTC().AddDate(0, 0, 1)
		if len(args) == 1 {
			parsed, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", models.ErrInvalidDate, args[0])
			}
			date = parsed
		}
		return run(cmd.Context(), date)
	},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context, date time.Time) error {
	cfg, err := loadConfigWithSecrets(configFile)
	if err != nil {
		return err
	}

	appLog := applogger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"date":        date.Format("2006-01-02"),
		"version":     Version,
		"commit":      GitCommit,
	}).Info("Puckcast predictor starting")

	client := nhl.NewClient(cfg.NHL, appLog)
	defer client.Close()

	store := storage.NewStore(cfg.Data, appLog)

	sheet, err := goalie.LoadSheet(store.GoaliesPath())
	if err != nil {
		appLog.WithError(err).Warn("Starting-goalie sheet unreadable, goalie factor will rely on nothing")
		sheet = goalie.Sheet{}
	}
	resolver := goalie.NewResolver(client, sheet, appLog)

	model := predictor.NewModel(cfg.Model, applogger.NewPredictionLogger(appLog))

	var repo repository.PredictionRepository
	if cfg.Database.Enabled {
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return fmt.Errorf("database initialization failed: %w", err)
		}
		defer db.Close()
		repo = repository.NewPostgresPredictionRepository(db)
	}

	svc := service.NewSlateService(client, resolver, model, store, repo, appLog)

	slate, err := svc.PredictDate(ctx, date)
	if err != nil {
		return err
	}

	renderSlate(slate)

	if dryRun {
		return nil
	}

	path, err := svc.PersistSlate(ctx, slate)
	if err != nil {
		return err
	}
	appLog.WithField("path", path).Info("Slate saved")
	return nil
}

func loadConfigWithSecrets(path string) (*config.Config, error) {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return nil, fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func renderSlate(slate *models.Slate) {
	fmt.Printf("\nNHL slate for %s\n", slate.Date)
	fmt.Println("=================================================")
	if len(slate.Games) == 0 {
		if slate.Message != "" {
			fmt.Println(slate.Message)
		} else {
			fmt.Println("No games.")
		}
		return
	}

	for i := range slate.Games {
		p := &slate.Games[i]
		fmt.Printf("%-13s  home win %5.1f%%  %s  (fav: %s)\n",
			fmt.Sprintf("%s @ %s", p.AwayTeam, p.HomeTeam),
			p.HomeWinProb*100,
			fmt.Sprintf("home %+d (%s) / away %+d (%s)",
				p.HomeAmericanOdds, p.HomeDecimalOdds(),
				p.AwayAmericanOdds, p.AwayDecimalOdds()),
			p.Favorite(),
		)
	}
	fmt.Println("=================================================")
	fmt.Printf("%d games, run %s\n\n", len(slate.Games), slate.RunID)
}
