package main

import (
	"fmt"

	"vidtube/internal/model"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []model.UserModel{
		{Username: "alice", Email: "alice@example.com", FullName: "Alice Carter", Password: string(hash)},
		{Username: "bob", Email: "bob@example.com", FullName: "Bob Miller", Password: string(hash)},
		{Username: "carol", Email: "carol@example.com", FullName: "Carol Nguyen", Password: string(hash)},
	}
	for i := range users {
		if err := db.Where("username = ?", users[i].Username).FirstOrCreate(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].Username, err)
		}
	}
	log.Info("Seeded %d users", len(users))

	videos := []model.VideoModel{
		{
			OwnerID:      users[0].ID,
			Title:        "Getting started with Go",
			Description:  "A walkthrough of modules, tooling and project layout",
			Duration:     612,
			IsPublished:  true,
			VideoURL:     "https://example.com/seed/go-intro.mp4",
			VideoKey:     "seed/go-intro.mp4",
			ThumbnailURL: "https://example.com/seed/go-intro.jpg",
			ThumbnailKey: "seed/go-intro.jpg",
		},
		{
			OwnerID:      users[1].ID,
			Title:        "Postgres indexing deep dive",
			Description:  "B-trees, partial indexes and when the planner ignores you",
			Duration:     1480,
			IsPublished:  true,
			VideoURL:     "https://example.com/seed/pg-indexes.mp4",
			VideoKey:     "seed/pg-indexes.mp4",
			ThumbnailURL: "https://example.com/seed/pg-indexes.jpg",
			ThumbnailKey: "seed/pg-indexes.jpg",
		},
	}
	for i := range videos {
		if err := db.Where("video_key = ?", videos[i].VideoKey).FirstOrCreate(&videos[i]).Error; err != nil {
			return fmt.Errorf("failed to seed video %s: %w", videos[i].Title, err)
		}
	}
	log.Info("Seeded %d videos", len(videos))

	subscriptions := []model.SubscriptionModel{
		{SubscriberID: users[1].ID, ChannelID: users[0].ID},
		{SubscriberID: users[2].ID, ChannelID: users[0].ID},
		{SubscriberID: users[0].ID, ChannelID: users[1].ID},
	}
	for i := range subscriptions {
		err := db.Where("subscriber_id = ? AND channel_id = ?",
			subscriptions[i].SubscriberID, subscriptions[i].ChannelID).
			FirstOrCreate(&subscriptions[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed subscription: %w", err)
		}
	}
	log.Info("Seeded %d subscriptions", len(subscriptions))

	return nil
}
