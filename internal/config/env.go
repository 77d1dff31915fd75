package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	embedModel := os.Getenv("OPENAI_EMBED_MODEL")
	environment := os.Getenv("ENVIRONMENT")
	uploadDir := os.Getenv("UPLOAD_DIR")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if embedModel == "" {
		embedModel = "text-embedding-3-small"
	}

	if environment == "" {
		environment = "development"
	}

	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	return &Config{
		DatabaseURL: databaseURL,
		JWTSecret:   jwtSecret,
		OpenAIKey:   openaiKey,
		EmbedModel:  embedModel,
		Environment: environment,
		UploadDir:   uploadDir,
		S3:          loadS3Config(),
	}, nil
}

// loads optional S3-compatible storage settings; all-or-nothing
func loadS3Config() S3Config {
	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	return S3Config{
		Endpoint:  endpoint,
		Bucket:    os.Getenv("S3_BUCKET"),
		AccessKey: os.Getenv("S3_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Region:    region,
		UseSSL:    !strings.EqualFold(os.Getenv("S3_DISABLE_SSL"), "true"),
	}
}
