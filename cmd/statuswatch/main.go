// Package main is the entry point for the statuswatch CLI.
//
// statuswatch monitors the web services listed in a Notion database:
// one `run` probes every service, records its status back to Notion,
// and sends a WhatsApp message through Twilio when a status changed.
//
// Usage:
//
//	statuswatch run     # one monitoring pass (for cron or CI triggers)
//	statuswatch serve   # read-only status API
//	statuswatch version # build info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// set at build time via ldflags, e.g.
// go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "statuswatch",
	Short: "Web service monitoring backed by Notion and Twilio",
	Long: `statuswatch checks the reachability of the web services listed in a
Notion database, classifies each one (Operational, Doubtful, Warning,
Maintenance, Down), writes the status back, and sends a WhatsApp
notification whenever a status changed since the previous run.

Configuration is read from the environment (a local .env file is
honoured): NOTION_API_TOKEN, NOTION_DATABASE_ID, TWILIO_ACCOUNT_SID,
TWILIO_AUTH_TOKEN, TWILIO_WHATSAPP_FROM, TWILIO_WHATSAPP_TO.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statuswatch %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
