package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/repository"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeder master data: import jobs dari file JSON/CSV, atau pakai data bawaan
// kalau file tidak diberikan.
func main() {
	file := flag.String("file", "", "path to jobs file (.json or .csv)")
	withUsers := flag.Bool("with-users", false, "also create demo users")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	db := connectDB()
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)

	var jobs []model.Job
	var err error
	switch {
	case *file == "":
		jobs = masterJobs()
	case strings.EqualFold(filepath.Ext(*file), ".json"):
		jobs, err = loadJSON(*file)
	case strings.EqualFold(filepath.Ext(*file), ".csv"):
		jobs, err = loadCSV(*file)
	default:
		log.Fatalf("unsupported file type: %s", *file)
	}
	if err != nil {
		log.Fatalf("could not load jobs: %v", err)
	}

	created := 0
	for i := range jobs {
		if jobs[i].Status == "" {
			jobs[i].Status = "active"
		}
		jobs[i].CreatedAt = time.Now()
		jobs[i].UpdatedAt = time.Now()
		if err := jobRepo.CreateJob(&jobs[i]); err != nil {
			log.Printf("skip job %q: %v", jobs[i].Title, err)
			continue
		}
		created++
	}
	fmt.Printf("seeded %d/%d jobs\n", created, len(jobs))

	if *withUsers {
		seedUsers(userRepo)
	}
}

type jobRow struct {
	EmployerID    string  `json:"employer_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	LocationScore float64 `json:"location_score"`
	SalaryMin     int     `json:"salary_min"`
	SalaryMax     int     `json:"salary_max"`
	FlexibleHours bool    `json:"flexible_hours"`
	WeekendWork   bool    `json:"weekend_work"`
}

func (r jobRow) toModel() model.Job {
	employerID, err := uuid.Parse(r.EmployerID)
	if err != nil {
		employerID = uuid.New() // employer tidak dikenal, kasih id baru
	}
	return model.Job{
		EmployerID:    employerID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Location:      r.Location,
		LocationScore: r.LocationScore,
		SalaryMin:     r.SalaryMin,
		SalaryMax:     r.SalaryMax,
		FlexibleHours: r.FlexibleHours,
		WeekendWork:   r.WeekendWork,
	}
}

func loadJSON(path string) ([]model.Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []jobRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	jobs := make([]model.Job, len(rows))
	for i, r := range rows {
		jobs[i] = r.toModel()
	}
	return jobs, nil
}

// loadCSV expects a header row:
// employer_id,title,category,location,location_score,salary_min,salary_max,flexible_hours,weekend_work
func loadCSV(path string) ([]model.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var jobs []model.Job
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}
		locScore, _ := strconv.ParseFloat(get("location_score"), 64)
		salaryMin, _ := strconv.Atoi(get("salary_min"))
		salaryMax, _ := strconv.Atoi(get("salary_max"))
		row := jobRow{
			EmployerID:    get("employer_id"),
			Title:         get("title"),
			Category:      get("category"),
			Location:      get("location"),
			LocationScore: locScore,
			SalaryMin:     salaryMin,
			SalaryMax:     salaryMax,
			FlexibleHours: get("flexible_hours") == "true",
			WeekendWork:   get("weekend_work") == "true",
		}
		if row.Title == "" {
			continue
		}
		jobs = append(jobs, row.toModel())
	}
	return jobs, nil
}

func masterJobs() []model.Job {
	employer := uuid.New()
	return []model.Job{
		{
			EmployerID:    employer,
			Title:         "Product Engineer (Backend)",
			Description:   "Backend engineer untuk platform job matching. Go, PostgreSQL, REST API.",
			Category:      "engineering",
			Location:      "Jakarta",
			LocationScore: 0.9,
			SalaryMin:     15000000,
			SalaryMax:     25000000,
			FlexibleHours: true,
		},
		{
			EmployerID:    employer,
			Title:         "Frontend Engineer",
			Description:   "React, Typescript, Tailwind",
			Category:      "engineering",
			Location:      "Jakarta",
			LocationScore: 0.9,
			SalaryMin:     12000000,
			SalaryMax:     20000000,
		},
		{
			EmployerID:    uuid.New(),
			Title:         "UI/UX Designer",
			Description:   "Figma, UI, UX",
			Category:      "design",
			Location:      "Bandung",
			LocationScore: 0.7,
			SalaryMin:     10000000,
			SalaryMax:     16000000,
			FlexibleHours: true,
		},
		{
			EmployerID:    uuid.New(),
			Title:         "Customer Support Specialist",
			Description:   "Shift-based support, weekend rotation",
			Category:      "support",
			Location:      "Surabaya",
			LocationScore: 0.6,
			SalaryMin:     7000000,
			SalaryMax:     10000000,
			WeekendWork:   true,
		},
	}
}

func seedUsers(userRepo *repository.UserRepository) {
	users := []model.User{
		{
			ID:          uuid.New(),
			Email:       "demo1@example.com",
			FullName:    "Demo Satu",
			Preferences: `{"categories":["engineering"],"location":"Jakarta","salary_min":12000000}`,
			Active:      true,
		},
		{
			ID:          uuid.New(),
			Email:       "demo2@example.com",
			FullName:    "Demo Dua",
			Preferences: `{"categories":["design","support"],"location":"Bandung"}`,
			Active:      true,
		},
	}
	created := 0
	for i := range users {
		users[i].CreatedAt = time.Now()
		users[i].UpdatedAt = time.Now()
		if err := userRepo.CreateUser(&users[i]); err != nil {
			log.Printf("skip user %q: %v", users[i].Email, err)
			continue
		}
		created++
	}
	fmt.Printf("seeded %d/%d users\n", created, len(users))
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
	if err := db.AutoMigrate(&model.Job{}, &model.User{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
