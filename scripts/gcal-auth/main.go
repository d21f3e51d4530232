// Command gcal-auth authorizes Google Calendar access for the gcalendar
// event store and writes the OAuth token to event_store.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth
//
// Only needed for OAuth desktop-app credentials; service account keys work
// without a token.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"calendar-assistant/config"
	"calendar-assistant/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Encoding: log.EncodingConsole, ColorEnabled: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf(ctx, "Failed to load config: %v", err)
	}
	credsPath := cfg.EventStore.CredentialsPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials %q (expected OAuth desktop app credentials): %v", credsPath, err)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(cfg.EventStore.TokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create %s: %v", cfg.EventStore.TokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", cfg.EventStore.TokenPath, err)
	}

	logger.Infof(ctx, "Token saved to %s. Set event_store.driver=gcalendar and restart the API.", cfg.EventStore.TokenPath)
}
