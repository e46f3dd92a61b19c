// Command seed-db provisions the default staff accounts and the starter
// menu. Idempotent: reruns update rather than duplicate. Stores only bcrypt
// password hashes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/calderon/cafepos/internal/domain/auth"
	"github.com/calderon/cafepos/internal/domain/menu"
	"github.com/calderon/cafepos/internal/repository"
)

type seedAccount struct {
	username string
	password string
	role     string
}

var starterMenu = []struct {
	name  string
	price string
}{
	{"Café Expresso", "10"},
	{"Café Clásico", "8"},
	{"Espresso Martini", "12"},
	{"Carajillo", "15"},
	{"Café Calypso", "13"},
}

func main() {
	var (
		databaseURL   string
		adminPassword string
		superPassword string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&adminPassword, "admin-password", "", "password for the admin account (or CAFEPOS_ADMIN_PASSWORD env)")
	flag.StringVar(&superPassword, "super-password", "", "password for the supervisor account (or CAFEPOS_SUPER_PASSWORD env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if adminPassword == "" {
		adminPassword = os.Getenv("CAFEPOS_ADMIN_PASSWORD")
	}
	if superPassword == "" {
		superPassword = os.Getenv("CAFEPOS_SUPER_PASSWORD")
	}
	if adminPassword == "" || superPassword == "" {
		slog.Error("account passwords are required: set --admin-password/--super-password or the CAFEPOS_*_PASSWORD envs")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	accounts := []seedAccount{
		{username: "admin", password: adminPassword, role: "admin"},
		{username: "super", password: superPassword, role: "supervisor"},
	}

	if err := run(ctx, databaseURL, accounts); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL string, accounts []seedAccount) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	accountRepo := repository.NewAccountRepository(pool)
	for _, a := range accounts {
		hash, err := auth.HashPassword(a.password)
		if err != nil {
			return errors.Wrapf(err, "hash password for %s", a.username)
		}
		if err := accountRepo.Upsert(ctx, a.username, hash, a.role); err != nil {
			return errors.Wrapf(err, "seed account %s", a.username)
		}
		slog.Info("seeded account", slog.String("username", a.username), slog.String("role", a.role))
	}

	menuRepo := repository.NewMenuRepository(pool)
	for _, m := range starterMenu {
		item := &menu.Item{
			Name:  m.name,
			Price: decimal.RequireFromString(m.price),
		}
		if err := menuRepo.Upsert(ctx, item); err != nil {
			return errors.Wrapf(err, "seed menu item %s", m.name)
		}
	}
	slog.Info("seeded menu", slog.Int("items", len(starterMenu)))

	return nil
}
