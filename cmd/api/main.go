package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ManyRagDev/brincar-educando-2/internal/config"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/dynamo"
	jwtinfra "github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/jwt"
	s3infra "github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/s3"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/smtp"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/sns"
	transporthttp "github.com/ManyRagDev/brincar-educando-2/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT verifier (optional — without it the authenticated routes are open,
	// which is only acceptable in local development).
	var jwtVerifier *jwtinfra.Verifier
	if v, err := jwtinfra.NewVerifier(cfg); err == nil {
		jwtVerifier = v
	} else {
		log.Printf("WARN: JWT verifier not available: %v", err)
	}

	// S3 media store.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS newsletter publisher (optional — signups still persist without it).
	var publisher sns.Publisher
	if p, err := sns.NewPublisher(cfg); err == nil {
		publisher = p
	} else {
		log.Printf("WARN: SNS publisher not available: %v", err)
	}

	deps := &transporthttp.Deps{
		ChildRepo:      dynamo.NewChildRepo(dynamoClient, cfg.DynamoTables.Children),
		ActivityRepo:   dynamo.NewActivityRepo(dynamoClient, cfg.DynamoTables.Activities),
		DiaryRepo:      dynamo.NewDiaryRepo(dynamoClient, cfg.DynamoTables.DiaryEntries),
		JourneyRepo:    dynamo.NewJourneyRepo(dynamoClient, cfg.DynamoTables.JourneySessions),
		SubscriberRepo: dynamo.NewSubscriberRepo(dynamoClient, cfg.DynamoTables.Subscribers),
		MailLogRepo:    dynamo.NewMailLogRepo(dynamoClient, cfg.DynamoTables.MailLog),
		S3Store:        s3Store,
		Mailer:         mailer,
		Publisher:      publisher,
		JWTVerifier:    jwtVerifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
