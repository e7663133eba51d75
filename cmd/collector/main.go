package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-entrylevel-collector/internal/browser"
	"go-entrylevel-collector/internal/config"
	"go-entrylevel-collector/internal/enrich"
	"go-entrylevel-collector/internal/models"
	"go-entrylevel-collector/internal/pipeline"
	"go-entrylevel-collector/internal/reporter"
	"go-entrylevel-collector/internal/scraper"
	"go-entrylevel-collector/internal/store"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Location: %q, pages: %d", cfg.Location, cfg.PageCount)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting entry-level job collection...")

	//open store
	st, err := store.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer st.Close()

	//init browser manager
	manager, err := browser.NewManager(cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	//close browser manager when application stops
	defer manager.Close()
	log.Println("✅ Browser initialized successfully!")

	//run pipeline
	p := pipeline.New(
		scraper.NewListingScraper(manager),
		enrich.NewDetailEnricher(manager),
		st,
		pipeline.LogSink{},
	)

	result, err := p.Run(ctx, pipeline.Options{
		Location:  cfg.Location,
		PageCount: cfg.PageCount,
	})
	if err != nil {
		log.Printf("❌ Pipeline error: %v", err)
	}
	log.Printf("📊 Run finished: %d saved, %d duplicates skipped, %d failed", result.Saved, result.Skipped, result.Failed)

	//report new jobs
	if cfg.TelegramToken != "" && len(result.Records) > 0 {
		bot, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		} else {
			for _, record := range result.Records {
				if err := bot.SendRecord(record); err != nil {
					log.Printf("⚠️ Failed to send job to Telegram: %v", err)
				}
				//1 second delay to avoid 429
				time.Sleep(1 * time.Second)
			}
			statusMsg := fmt.Sprintf("✅ Collected %d new jobs (%d duplicates skipped).", result.Saved, result.Skipped)
			if err := bot.SendStatus(statusMsg); err != nil {
				log.Printf("⚠️ Failed to send status to Telegram: %v", err)
			}
		}
	}

	//save run results
	saveRecords(result.Records)

	log.Println("🏁 Execution finished.")
}

func saveRecords(records []models.JobRecord) {
	if len(records) == 0 {
		log.Println("ℹ️ No new records to save.")
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: job-collect-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-collect-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(records, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal records to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
