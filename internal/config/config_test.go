package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "secret_tok")
	t.Setenv("NOTION_DATABASE_ID", "db-1")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "tw-tok")
	t.Setenv("TWILIO_WHATSAPP_FROM", "+14155238886")
	t.Setenv("TWILIO_WHATSAPP_TO", "+919780221904")
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("PROBE_TIMEOUT_MS", "2500")
	t.Setenv("RETRY_ATTEMPTS", "5")
	t.Setenv("RETRY_BACKOFF_MS", "250")
	t.Setenv("MAX_CONCURRENT_CHECKS", "7")

	cfg := FromEnv()

	if cfg.NotionToken != "secret_tok" || cfg.NotionDatabaseID != "db-1" {
		t.Fatalf("notion config wrong: %+v", cfg)
	}
	if cfg.TwilioAccountSID != "AC1" || cfg.WhatsAppTo != "+919780221904" {
		t.Fatalf("twilio config wrong: %+v", cfg)
	}
	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if cfg.ProbeTimeout != 2500*time.Millisecond {
		t.Fatalf("probe timeout wrong: %v", cfg.ProbeTimeout)
	}
	if cfg.RetryAttempts != 5 || cfg.RetryBackoff != 250*time.Millisecond {
		t.Fatalf("retry tuning wrong: %+v", cfg)
	}
	if cfg.Concurrency != 7 {
		t.Fatalf("concurrency wrong: %d", cfg.Concurrency)
	}
}

func TestFromEnv_DefaultsWhenUnset(t *testing.T) {
	for _, k := range []string{
		"NOTION_API_TOKEN", "NOTION_DATABASE_ID", "ADDR", "LOG_DIR",
		"PROBE_TIMEOUT_MS", "RETRY_ATTEMPTS", "RETRY_BACKOFF_MS", "MAX_CONCURRENT_CHECKS",
	} {
		os.Unsetenv(k)
	}

	cfg := FromEnv()
	if cfg.Addr != "127.0.0.1:8080" || cfg.LogDir != "logs" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.ProbeTimeout != 10*time.Second || cfg.RetryAttempts != 2 || cfg.Concurrency != 8 {
		t.Fatalf("tuning defaults wrong: %+v", cfg)
	}
}

func TestFromEnv_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT_MS", "not-a-number")
	t.Setenv("RETRY_ATTEMPTS", "-3")
	t.Setenv("MAX_CONCURRENT_CHECKS", "0")

	cfg := FromEnv()
	if cfg.ProbeTimeout != 10*time.Second || cfg.RetryAttempts != 2 || cfg.Concurrency != 8 {
		t.Fatalf("bad values should fall back to defaults: %+v", cfg)
	}
}
