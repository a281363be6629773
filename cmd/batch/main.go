package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/fadilmartias/jobmatch/internal/repository"
	"github.com/fadilmartias/jobmatch/internal/usecase"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// One-shot batch runner, buat dijalankan dari cron/ops tanpa menyalakan API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	db := connectDB()
	matchingConfig := config.LoadMatchingConfig()

	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	runRepo := repository.NewBatchRunRepository(db)

	matchingUc := usecase.NewMatchingUsecase(userRepo, jobRepo, appRepo, recRepo, matchingConfig)
	batchUc := usecase.NewBatchUsecase(matchingUc, userRepo, jobRepo, recRepo, runRepo)

	run, err := batchUc.Run()
	if err != nil {
		log.Fatalf("batch run failed: %v", err)
	}

	fmt.Printf("batch %s: %s\n", run.ID, run.Status)
	fmt.Printf("  users:   %d total, %d matched, %d failed\n", run.UsersTotal, run.UsersMatched, run.UsersFailed)
	fmt.Printf("  jobs:    %d scored\n", run.JobsScored)
	if run.FinishedAt != nil {
		fmt.Printf("  elapsed: %s\n", run.FinishedAt.Sub(run.StartedAt))
	}
}

func connectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	pgDB.SetMaxIdleConns(2)
	pgDB.SetMaxOpenConns(5)
	pgDB.SetConnMaxLifetime(30 * time.Minute)
	return db
}
