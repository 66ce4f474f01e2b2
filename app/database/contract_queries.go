package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

const contractColumns = `id, property_id, tenant_id, owner_id, start_date, end_date,
	expiration_day, rent, archived, created_at, updated_at`

func scanContract(row interface{ Scan(...interface{}) error }) (*models.Contract, error) {
	c := &models.Contract{}
	err := row.Scan(
		&c.ID, &c.PropertyID, &c.TenantID, &c.OwnerID,
		&c.StartDate, &c.EndDate, &c.ExpirationDay, &c.Rent,
		&c.Archived, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateContract inserts a new contract, archiving any active one on the same
// property inside the same transaction so the property never has zero or two
// active contracts mid-write
func CreateContract(db *sql.DB, contract *models.Contract) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Supersede the current contract, if any
	_, err = tx.Exec(
		`UPDATE contracts SET archived = true, updated_at = NOW()
		 WHERE property_id = $1 AND archived = false`,
		contract.PropertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to archive superseded contract: %w", err)
	}

	// 2. Insert the new contract
	contract.ID = uuid.NewString()
	query := `INSERT INTO contracts (id, property_id, tenant_id, owner_id, start_date, end_date, expiration_day, rent)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING created_at, updated_at`
	err = tx.QueryRow(query,
		contract.ID,
		contract.PropertyID,
		contract.TenantID,
		contract.OwnerID,
		contract.StartDate,
		contract.EndDate,
		contract.ExpirationDay,
		contract.Rent,
	).Scan(&contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %w", err)
	}

	return tx.Commit()
}

// GetContract retrieves a contract by ID regardless of scope; ownership checks
// belong to the services layer so missing and unauthorized stay distinguishable
func GetContract(db *sql.DB, id string) (*models.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetContractForProperty retrieves the current non-archived contract of a property
func GetContractForProperty(db *sql.DB, propertyID string) (*models.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
	          WHERE property_id = $1 AND archived = false`
	c, err := scanContract(db.QueryRow(query, propertyID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetActiveContracts retrieves an owner's non-archived contracts whose date
// range contains today, both bounds inclusive
func GetActiveContracts(db *sql.DB, ownerID string, today time.Time) ([]models.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
	          WHERE owner_id = $1 AND archived = false
	          AND start_date <= $2 AND end_date >= $2
	          ORDER BY start_date ASC`

	rows, err := db.Query(query, ownerID, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

// GetContractsForOwner retrieves every non-archived contract of an owner
func GetContractsForOwner(db *sql.DB, ownerID string) ([]models.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
	          WHERE owner_id = $1 AND archived = false
	          ORDER BY start_date ASC`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

// GetOwnersWithContracts returns the distinct owner IDs holding non-archived contracts
func GetOwnersWithContracts(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT owner_id FROM contracts WHERE archived = false`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, err
		}
		owners = append(owners, owner)
	}
	return owners, rows.Err()
}
