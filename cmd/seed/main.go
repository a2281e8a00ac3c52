package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"tempo/internal/config"
	"tempo/internal/domain/models"
	"tempo/internal/repository/postgres"
	"tempo/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "dev-user", "user id to seed data for")
	clearData := flag.Bool("clear", false, "clear the user's data before seeding")
	days := flag.Int("days", 30, "spread entries over this many past days")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Environment == "prod" {
		log.Fatalf("refusing to seed a prod environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if *clearData {
		log.Printf("clearing data for user %s", *userID)
		if err := clearUserData(ctx, pool, *userID); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	moduleRepo := postgres.NewModuleRepository(repoConfig)
	entryRepo := postgres.NewEntryRepository(repoConfig)

	folderService := service.NewFolderService(folderRepo, logger)
	moduleService := service.NewModuleService(moduleRepo, folderRepo, logger)
	entryService := service.NewEntryService(entryRepo, moduleRepo, logger)

	log.Printf("seeding fixture data for user %s", *userID)

	target := func(h float64) *float64 { return &h }

	uni, err := folderService.CreateFolder(ctx, &models.CreateFolderRequest{
		UserID: *userID, Name: "University",
	})
	if err != nil {
		log.Fatalf("create folder: %v", err)
	}
	mathFolder, err := folderService.CreateFolder(ctx, &models.CreateFolderRequest{
		UserID: *userID, Name: "Math", ParentID: &uni.ID,
	})
	if err != nil {
		log.Fatalf("create folder: %v", err)
	}
	cs, err := folderService.CreateFolder(ctx, &models.CreateFolderRequest{
		UserID: *userID, Name: "Computer Science", ParentID: &uni.ID,
	})
	if err != nil {
		log.Fatalf("create folder: %v", err)
	}
	personal, err := folderService.CreateFolder(ctx, &models.CreateFolderRequest{
		UserID: *userID, Name: "Personal",
	})
	if err != nil {
		log.Fatalf("create folder: %v", err)
	}

	seedModules := []struct {
		folderID string
		name     string
		target   *float64
	}{
		{mathFolder.ID, "Linear Algebra", target(60)},
		{mathFolder.ID, "Analysis", target(80)},
		{cs.ID, "Distributed Systems", target(40)},
		{cs.ID, "Compilers", nil},
		{personal.ID, "Guitar", nil},
	}

	activityTypes := []string{"lecture", "reading", "exercises", "practice"}

	for _, sm := range seedModules {
		module, err := moduleService.CreateModule(ctx, &models.CreateModuleRequest{
			UserID:      *userID,
			FolderID:    sm.folderID,
			Name:        sm.name,
			TargetHours: sm.target,
		})
		if err != nil {
			log.Fatalf("create module %s: %v", sm.name, err)
		}

		// A handful of entries per module, scattered over the window
		for i := 0; i < 8; i++ {
			date := time.Now().AddDate(0, 0, -rand.Intn(*days))
			hours := 0.25 * float64(1+rand.Intn(10)) // 0.25h .. 2.5h
			if _, err := entryService.CreateEntry(ctx, &models.CreateEntryRequest{
				UserID:        *userID,
				ModuleID:      module.ID,
				ActivityType:  activityTypes[rand.Intn(len(activityTypes))],
				DurationHours: hours,
				Date:          date.Format(models.EntryDateLayout),
			}); err != nil {
				log.Fatalf("create entry: %v", err)
			}
		}
	}

	log.Println("seed complete")
}

// clearUserData removes everything owned by the user; folders cascade to
// modules and entries.
func clearUserData(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	_, err := pool.Exec(ctx, `DELETE FROM folders WHERE user_id = $1`, userID)
	return err
}
