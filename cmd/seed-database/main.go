package main

import (
	"flag"
	"log"

	"github.com/architect/medquiz/internal/common/database"
	quizmodels "github.com/architect/medquiz/internal/quiz/models"
	quizrepo "github.com/architect/medquiz/internal/quiz/repository"
	usermodels "github.com/architect/medquiz/internal/users/models"
)

var (
	dbType     = flag.String("db-type", "sqlite", "Database type: sqlite or postgres")
	dsn        = flag.String("dsn", "./data/medquiz.db?mode=rwc&cache=shared&timeout=5000", "Database DSN")
	clearFirst = flag.Bool("clear", false, "Delete existing sample questions before seeding")
)

func main() {
	flag.Parse()

	if err := database.InitWithType(*dbType, *dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.GetDB().AutoMigrate(
		&usermodels.User{},
		&usermodels.DailyUsage{},
		&quizmodels.Question{},
		&quizmodels.AnswerRecord{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("🌱 Starting data seeding...")

	if *clearFirst {
		if err := database.GetDB().
			Where("source IN ?", []string{quizmodels.SourceSample, quizmodels.SourceUNEPriority}).
			Delete(&quizmodels.Question{}).Error; err != nil {
			log.Fatalf("Failed to clear sample questions: %v", err)
		}
		log.Println("🧹 Cleared existing sample questions")
	}

	created, err := quizrepo.CreateQuestions(sampleQuestions())
	if err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	log.Printf("✅ Created %d questions", created)

	counts, err := quizrepo.CountByCategory()
	if err != nil {
		log.Fatalf("Failed to count categories: %v", err)
	}
	for category, count := range counts {
		log.Printf("   %s: %d questions", category, count)
	}

	log.Println("🎉 Seeding complete")
}
