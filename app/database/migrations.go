package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS properties (
			id UUID PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			archived BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties (owner_id) WHERE archived = false`,
		`CREATE TABLE IF NOT EXISTS contracts (
			id UUID PRIMARY KEY,
			property_id UUID NOT NULL REFERENCES properties(id),
			tenant_id TEXT NOT NULL,
			owner_id TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			expiration_day INT NOT NULL CHECK (expiration_day BETWEEN 1 AND 20),
			rent NUMERIC(12,2) NOT NULL CHECK (rent > 0),
			archived BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (end_date > start_date)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contracts_one_active_per_property
			ON contracts (property_id) WHERE archived = false`,
		`CREATE INDEX IF NOT EXISTS idx_contracts_owner ON contracts (owner_id)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			contract_id UUID NOT NULL REFERENCES contracts(id),
			payment_number INT NOT NULL CHECK (payment_number >= 1),
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			status TEXT NOT NULL DEFAULT 'pending',
			rejection_reason TEXT,
			submitted_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK ((status = 'rejected') = (rejection_reason IS NOT NULL))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_contract_period ON payments (contract_id, payment_number)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
