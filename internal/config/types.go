package config

// Config holds all process-wide configuration, loaded once at startup and
// passed by reference into services. No package keeps global handles.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	OpenAIKey   string
	EmbedModel  string
	Environment string

	// upload storage
	UploadDir string
	S3        S3Config
}

// S3Config holds optional S3-compatible object storage settings.
// When Bucket is empty, uploads are kept on local disk.
type S3Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// IsProduction reports whether the server runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Enabled reports whether object storage is configured.
func (s S3Config) Enabled() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}
