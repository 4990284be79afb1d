// Command token prints a signed access token for local testing.
//
// Usage:
//
//	token --user=<uuid> [--email=owner@example.com]
//
// The secret, issuer, audience and TTL come from the auth section of the
// regular configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/speedsales/studio-backend/internal/auth"
	"github.com/speedsales/studio-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "owner UUID to put in the token subject (random when empty)")
	email := flag.String("email", "", "optional email claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		userID, err = uuid.Parse(*user)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --user: %v\n", err)
			os.Exit(1)
		}
	}

	token, err := auth.NewJWTManager(cfg.Auth).GenerateAccessToken(userID, *email)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}
