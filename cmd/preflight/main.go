// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	notionToken := strings.TrimSpace(os.Getenv("NOTION_API_TOKEN"))
	notionDB := strings.TrimSpace(os.Getenv("NOTION_DATABASE_ID"))
	twilioSID := strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID"))
	twilioTok := strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN"))
	waFrom := strings.TrimSpace(os.Getenv("TWILIO_WHATSAPP_FROM"))
	waTo := strings.TrimSpace(os.Getenv("TWILIO_WHATSAPP_TO"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))

	if notionToken == "" {
		fail("NOTION_API_TOKEN is empty (run cannot fetch the service list).")
	}
	if notionDB == "" {
		fail("NOTION_DATABASE_ID is empty (run cannot fetch the service list).")
	}
	ok("Notion credentials present")

	if twilioSID == "" || twilioTok == "" {
		warn("TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN empty — notifications disabled, statuses still recorded.")
	} else {
		ok("Twilio credentials present")
		if waFrom == "" {
			warn("TWILIO_WHATSAPP_FROM empty — sends will be rejected by Twilio.")
		}
		if waTo == "" {
			warn("TWILIO_WHATSAPP_TO empty — nobody will receive notifications.")
		}
	}

	if logDir == "" {
		warn("LOG_DIR empty; default in your app may be used.")
	} else {
		ok("LOG_DIR=" + logDir)
	}

	ok("preflight passed")
}
