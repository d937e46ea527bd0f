package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/fatih/color"

	"github.com/examtrack/examtrack-api/internal/category"
	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/question"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

// seedFile is the bulk content format: the JSON export produced by the
// content authoring pipeline.
type seedFile struct {
	Categories []category.Category `json:"categories"`
	Questions  []question.Question `json:"questions"`
}

func main() {
	file := flag.String("file", "seed.json", "path to the seed JSON file")
	reset := flag.Bool("reset", false, "delete existing categories and questions first")
	flag.Parse()

	config.Init()

	if err := config.Connect(context.Background(), os.Getenv("DATABASE_DSN")); err != nil {
		color.Red("failed to connect to DB: %v", err)
		os.Exit(1)
	}
	if err := config.DB.AutoMigrate(&category.Category{}, &question.Question{}); err != nil {
		color.Red("failed to run migrations: %v", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		color.Red("failed to read %s: %v", *file, err)
		os.Exit(1)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		color.Red("failed to parse %s: %v", *file, err)
		os.Exit(1)
	}

	if *reset {
		color.Yellow("Deleting existing content...")
		if err := config.DB.Where("1 = 1").Delete(&question.Question{}).Error; err != nil {
			color.Red("failed to delete questions: %v", err)
			os.Exit(1)
		}
		if err := config.DB.Where("1 = 1").Delete(&category.Category{}).Error; err != nil {
			color.Red("failed to delete categories: %v", err)
			os.Exit(1)
		}
	}

	for i := range seed.Categories {
		if seed.Categories[i].ID == "" {
			seed.Categories[i].ID = util.NewID("cat")
		}
	}
	for i := range seed.Questions {
		if seed.Questions[i].ID == "" {
			seed.Questions[i].ID = util.NewID("q")
		}
	}

	if len(seed.Categories) > 0 {
		if err := config.DB.Create(&seed.Categories).Error; err != nil {
			color.Red("failed to insert categories: %v", err)
			os.Exit(1)
		}
	}
	if len(seed.Questions) > 0 {
		if err := config.DB.CreateInBatches(&seed.Questions, 100).Error; err != nil {
			color.Red("failed to insert questions: %v", err)
			os.Exit(1)
		}
	}

	color.Green("Seeded %d categories and %d questions", len(seed.Categories), len(seed.Questions))
}
