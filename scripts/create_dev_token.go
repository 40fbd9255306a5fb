package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/incial/Incial/pkg/config"
	"github.com/incial/Incial/pkg/session"
)

// Mints a session token for local development so the calendar endpoints can
// be exercised with curl without wiring a sign-in flow.
//
//	go run scripts/create_dev_token.go "Dana" dana@example.com
func main() {
	log.Println("🚀 Minting development session token...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	name, email := "Dev User", "dev@example.com"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	if len(os.Args) > 2 {
		email = os.Args[2]
	}

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.Expiry)
	token, err := sessions.Issue(uuid.New(), name, email)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	log.Printf("✅ Token issued for %s <%s> (expires in %s)", name, email, cfg.Session.Expiry)
	fmt.Println(token)
}
