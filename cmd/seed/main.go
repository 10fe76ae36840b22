package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/oggyb/messages-api/internal/config"
	"github.com/oggyb/messages-api/internal/db/gormdb"
	domain "github.com/oggyb/messages-api/internal/domain/message"
	mesgRepo "github.com/oggyb/messages-api/internal/repository/gorm/message"
	"gorm.io/gorm"
)

var authors = []string{"alice", "bob", "carol", "dave", "erin"}

func main() {
	ctx := context.Background()

	// Load application configuration from env/.env.
	cfg := config.New()

	gormAdapter, err := gormdb.New(cfg.PostgresDSN(), cfg.DB.MaxOpenConns)
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}
	defer gormAdapter.Close()

	log.Printf("[Seed] Connected to database")

	// 1) AutoMigrate: make sure the messages table exists.
	rawDB := gormAdapter.Conn().(*gorm.DB)

	if err := rawDB.AutoMigrate(&mesgRepo.MessageModel{}); err != nil {
		log.Fatalf("[Seed] AutoMigrate failed: %v", err)
	}
	log.Println("[Seed] Messages table is up to date (AutoMigrate completed).")

	// 2) Insert N messages spread over the last seedCount minutes, oldest first.
	const seedCount = 50

	repo := mesgRepo.NewRepository(gormAdapter)
	start := time.Now().UTC().Add(-seedCount * time.Minute)

	log.Printf("[Seed] Inserting %d messages...", seedCount)

	for i := 0; i < seedCount; i++ {
		msg, err := domain.NewMessage(
			authors[rand.Intn(len(authors))],
			randomContent(i+1),
			start.Add(time.Duration(i)*time.Minute),
		)
		if err != nil {
			log.Fatalf("[Seed] Invalid message #%d: %v", i+1, err)
		}

		if err := repo.Save(ctx, msg); err != nil {
			log.Fatalf("[Seed] Failed to save message #%d: %v", i+1, err)
		}

		log.Printf("[Seed] Created message #%d: id=%d author=%s", i+1, msg.ID, msg.Author)
	}

	log.Printf("[Seed] Done. Inserted %d messages into table 'messages'.", seedCount)
}

// randomContent generates a simple message body for seeding.
func randomContent(i int) string {
	greetings := []string{"Hello", "Hi there", "Good morning", "Quick update", "Reminder"}
	return fmt.Sprintf("%s, seed message #%d", greetings[rand.Intn(len(greetings))], i)
}
