// Command provision creates or updates an account directly against the
// database. Accounts are provisioned out of band; the API exposes no
// registration endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/saboresunicos/ordering-service/internal/auth"
	"github.com/saboresunicos/ordering-service/internal/config"
	"github.com/saboresunicos/ordering-service/internal/domain"
	"github.com/saboresunicos/ordering-service/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	username := flag.String("username", "", "account username")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	role := flag.String("role", string(domain.RoleUser), "account role (admin or user)")
	reset := flag.Bool("reset", false, "reset the password of an existing account")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !*reset && *email == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !domain.Role(*role).Valid() {
		log.Fatalf("invalid role %q", *role)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Postgres.DSN == "" {
		log.Fatal("POSTGRES_DSN required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	accounts := repository.NewAccountRepository(pool)

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	if *reset {
		existing, err := accounts.FindByUsername(ctx, *username)
		if err != nil {
			log.Fatalf("find account: %v", err)
		}
		if _, err := accounts.Update(ctx, existing.ID, domain.AccountUpdate{PasswordHash: &hash}); err != nil {
			log.Fatalf("update password: %v", err)
		}
		fmt.Printf("password reset for %s (id %d)\n", existing.Username, existing.ID)
		return
	}

	account := &domain.Account{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
		Role:         domain.Role(*role),
	}
	if err := accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			log.Fatalf("account already exists: %v", err)
		}
		log.Fatalf("create account: %v", err)
	}
	fmt.Printf("created %s account %s (id %d)\n", account.Role, account.Username, account.ID)
}
