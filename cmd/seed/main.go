// Command seed loads the curated activity library into DynamoDB. It is
// idempotent: activity IDs equal their slugs, so running it again overwrites
// the same rows.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/ManyRagDev/brincar-educando-2/internal/application/activities"
	"github.com/ManyRagDev/brincar-educando-2/internal/config"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/dynamo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	client := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, client, cfg.DynamoTables)

	repo := dynamo.NewActivityRepo(client, cfg.DynamoTables.Activities)

	library := activities.DefaultLibrary()
	now := time.Now().UTC()
	for i := range library {
		a := library[i]
		a.CreatedAt = now
		if err := repo.Put(ctx, &a); err != nil {
			log.Fatalf("seed activity %s: %v", a.Slug, err)
		}
		log.Printf("seeded activity %s", a.Slug)
	}
	log.Printf("done: %d activities", len(library))
}
