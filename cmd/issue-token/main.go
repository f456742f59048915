// Command issue-token mints a bearer token for an existing user. Identity is
// established outside the API, so this is how operators hand out access.
//
// Usage:
//
//	issue-token --username=aria
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mythosengine/backend/internal/adapter/postgres"
	"github.com/mythosengine/backend/internal/adapter/postgres/user"
	"github.com/mythosengine/backend/internal/auth"
	"github.com/mythosengine/backend/internal/config"
	"github.com/mythosengine/backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username to issue a token for")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --username=aria")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	u, err := user.New(pool).GetByUsername(ctx, *username)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with username %q.\n", *username)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("lookup user: %v", err)
	}
	if !u.IsActive {
		fmt.Printf("User %q is deactivated.\n", *username)
		os.Exit(1)
	}

	token, expiresAt, err := auth.NewJWTManager(cfg.Auth).GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}
