// Package repository provides PostgreSQL persistence for the API.
package repository

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Connect opens a PostgreSQL connection pool.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// schema is applied idempotently at startup. The unique indexes on the
// natural identifiers are what guard against duplicate document inserts;
// the pipeline itself never pre-checks.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS document_log (
	id BIGSERIAL PRIMARY KEY,
	uploader TEXT NOT NULL,
	file_name TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	status TEXT NOT NULL,
	details TEXT,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS pan_data (
	id BIGSERIAL PRIMARY KEY,
	pan_number VARCHAR(10) NOT NULL UNIQUE,
	name TEXT,
	gender VARCHAR(10),
	dob DATE,
	image_path TEXT NOT NULL,
	uploaded_by TEXT NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS voter_id_data (
	id BIGSERIAL PRIMARY KEY,
	voter_id_number VARCHAR(20) NOT NULL UNIQUE,
	name TEXT,
	gender VARCHAR(10),
	dob DATE,
	image_path TEXT NOT NULL,
	uploaded_by TEXT NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS passport_data (
	id BIGSERIAL PRIMARY KEY,
	passport_number VARCHAR(20) NOT NULL UNIQUE,
	name TEXT,
	gender VARCHAR(10),
	dob DATE,
	expiry_date DATE,
	image_path TEXT NOT NULL,
	uploaded_by TEXT NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);
`

// Migrate creates the tables and unique indexes if they do not exist.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
