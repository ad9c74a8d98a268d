// Command seed creates the gallery schema and a starter account per role.
// It is idempotent: existing tables and accounts are left alone.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hannahsm1th/art-gallery-api/internal/app"
	"github.com/hannahsm1th/art-gallery-api/internal/platform/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS artists (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	sort_title TEXT NOT NULL,
	birth_date INT NOT NULL,
	death_date INT,
	description TEXT NOT NULL DEFAULT '',
	created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS artworks (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	image TEXT NOT NULL,
	thumbnail TEXT NOT NULL,
	date_start INT NOT NULL,
	date_end INT,
	place_of_origin TEXT NOT NULL,
	dimensions TEXT NOT NULL,
	medium_display TEXT NOT NULL,
	provenance_text TEXT NOT NULL DEFAULT '',
	is_public_domain BOOLEAN NOT NULL DEFAULT FALSE,
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	department TEXT NOT NULL,
	artist_id BIGINT NOT NULL,
	artist_title TEXT NOT NULL,
	on_display BOOLEAN NOT NULL DEFAULT FALSE,
	created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS videos (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	video TEXT NOT NULL,
	thumbnail TEXT NOT NULL,
	production_date INT NOT NULL,
	place_of_origin TEXT NOT NULL,
	length TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_public_domain BOOLEAN NOT NULL DEFAULT FALSE,
	creator TEXT NOT NULL,
	subject TEXT NOT NULL,
	published BOOLEAN NOT NULL DEFAULT FALSE,
	created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS audit_logs (
	id UUID PRIMARY KEY,
	actor_id BIGINT NOT NULL,
	action TEXT NOT NULL,
	entity TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);
`

type seedAccount struct {
	firstName string
	lastName  string
	email     string
	password  string
	role      string
}

var accounts = []seedAccount{
	{"Morgan", "Hale", "manager@gallery.example", "manager-pass", "MA"},
	{"Sam", "Torres", "staff@gallery.example", "staff-pass", "ST"},
	{"Elena", "Okafor", "educator@gallery.example", "educator-pass", "ED"},
	{"Vic", "Laurent", "visitor@gallery.example", "visitor-pass", "VI"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seed complete")
}

func run(logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return err
	}

	for _, acct := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		tag, err := pool.Exec(ctx, `
			INSERT INTO users (first_name, last_name, email, password, role)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO NOTHING`,
			acct.firstName, acct.lastName, acct.email, string(hash), acct.role)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			logger.Info("seeded account", slog.String("email", acct.email), slog.String("role", acct.role))
		}
	}
	return nil
}
