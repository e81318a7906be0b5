package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	NotionToken      string // Notion integration token
	NotionDatabaseID string // database holding the monitored services

	TwilioAccountSID string
	TwilioAuthToken  string
	WhatsAppFrom     string // Twilio WhatsApp sender, e.g. "+14155238886"
	WhatsAppTo       string // notification recipient

	Addr   string // bind address for the serve command
	LogDir string // logs directory

	ProbeTimeout  time.Duration // per-probe HTTP timeout
	RetryAttempts int           // how many times to retry a non-response
	RetryBackoff  time.Duration // backoff between retries
	Concurrency   int           // max services probed in parallel
}

// LoadDotEnv loads a local .env file when present. Missing files are
// fine; deployments set the environment directly.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	probeTimeout := 10 * time.Second
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			probeTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	retryAttempts := 2
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retryAttempts = n
		}
	}

	retryBackoff := 300 * time.Millisecond
	if v := os.Getenv("RETRY_BACKOFF_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			retryBackoff = time.Duration(ms) * time.Millisecond
		}
	}

	concurrency := 8
	if v := os.Getenv("MAX_CONCURRENT_CHECKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	return Config{
		NotionToken:      os.Getenv("NOTION_API_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		WhatsAppFrom:     os.Getenv("TWILIO_WHATSAPP_FROM"),
		WhatsAppTo:       os.Getenv("TWILIO_WHATSAPP_TO"),
		Addr:             addr,
		LogDir:           logDir,
		ProbeTimeout:     probeTimeout,
		RetryAttempts:    retryAttempts,
		RetryBackoff:     retryBackoff,
		Concurrency:      concurrency,
	}
}
