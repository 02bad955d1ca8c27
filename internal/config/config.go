package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string

	// SNSTopicARN is the topic notified on newsletter signups.
	// Empty disables publishing (the subscriber row is still stored).
	SNSTopicARN string

	// MailerAppID is the tenant tag this instance accepts on the send-email
	// hook. Events carrying any other app_id are rejected.
	MailerAppID string

	SMTPHost       string
	SMTPPort       int
	SMTPFrom       string
	SMTPFromName   string
	SMTPUsername   string
	SMTPPassword   string
	SMTPEncryption string // "none", "starttls", "ssl_tls"

	// AuthJWTSecret verifies access tokens issued by the hosted identity
	// provider (HS256). Empty disables the authenticated route group.
	AuthJWTSecret string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Children        string
	Activities      string
	DiaryEntries    string
	JourneySessions string
	Subscribers     string
	MailLog         string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Children:        getEnv("DYNAMO_TABLE_CHILDREN", "children"),
			Activities:      getEnv("DYNAMO_TABLE_ACTIVITIES", "activities"),
			DiaryEntries:    getEnv("DYNAMO_TABLE_DIARY_ENTRIES", "diary_entries"),
			JourneySessions: getEnv("DYNAMO_TABLE_JOURNEY_SESSIONS", "journey_sessions"),
			Subscribers:     getEnv("DYNAMO_TABLE_SUBSCRIBERS", "newsletter_subscribers"),
			MailLog:         getEnv("DYNAMO_TABLE_MAIL_LOG", "mail_log"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "brincar-educando-media"),
		SNSTopicARN:  getEnv("SNS_NEWSLETTER_TOPIC_ARN", ""),

		MailerAppID: getEnv("MAILER_APP_ID", "brincareducando"),

		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnvInt("SMTP_PORT", 1025),
		SMTPFrom:       getEnv("SMTP_FROM", "noreply@brincareducando.com.br"),
		SMTPFromName:   getEnv("SMTP_FROM_NAME", "Brincar Educando"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPEncryption: getEnv("SMTP_ENCRYPTION", "starttls"),

		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
