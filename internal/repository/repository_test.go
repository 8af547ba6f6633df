package repository

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/database"
	"github.com/yourusername/puckcast/internal/models"
)

// Integration tests run against a real Postgres instance, configured
// through PUCKCAST_TEST_DB_* variables. Skipped otherwise.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	host := os.Getenv("PUCKCAST_TEST_DB_HOST")
	if host == "" {
		t.Skip("Integration test - set PUCKCAST_TEST_DB_HOST to run against Postgres")
	}
	port, _ := strconv.Atoi(os.Getenv("PUCKCAST_TEST_DB_PORT"))
	if port == 0 {
		port = 5432
	}

	cfg := &config.Config{Database: config.DatabaseConfig{
		Enabled:  true,
		Host:     host,
		Port:     port,
		Name:     os.Getenv("PUCKCAST_TEST_DB_NAME"),
		User:     os.Getenv("PUCKCAST_TEST_DB_USER"),
		Password: os.Getenv("PUCKCAST_TEST_DB_PASSWORD"),
		SSLMode:  "disable",
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestSaveSlateAndGetByDate(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresPredictionRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slate := models.NewSlate("2026-01-15")
	slate.Games = []models.PredictionRecord{
		{GameID: 2025020701, Date: "2026-01-15", HomeTeam: "MTL", AwayTeam: "OTT", HomeWinProb: 0.45, HomeAmericanOdds: 122, AwayAmericanOdds: -122},
		{GameID: 2025020700, Date: "2026-01-15", HomeTeam: "TOR", AwayTeam: "BOS", HomeWinProb: 0.6, HomeAmericanOdds: -150, AwayAmericanOdds: 150},
	}

	if err := repo.SaveSlate(ctx, slate); err != nil {
		t.Fatalf("failed to save slate: %v", err)
	}

	records, err := repo.GetByDate(ctx, "2026-01-15")
	if err != nil {
		t.Fatalf("failed to fetch predictions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].GameID != 2025020700 {
		t.Errorf("expected game-ID order, got %d first", records[0].GameID)
	}

	// A re-run for the same date replaces the stored lines.
	slate.Games[1].HomeWinProb = 0.65
	slate.Games[1].HomeAmericanOdds = -186
	slate.Games[1].AwayAmericanOdds = 186
	if err := repo.SaveSlate(ctx, slate); err != nil {
		t.Fatalf("failed to re-save slate: %v", err)
	}

	records, err = repo.GetByDate(ctx, "2026-01-15")
	if err != nil {
		t.Fatalf("failed to re-fetch predictions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected upsert, not duplicate rows: got %d", len(records))
	}
	if records[0].HomeAmericanOdds != -186 {
		t.Errorf("expected updated line -186, got %d", records[0].HomeAmericanOdds)
	}
}
