package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// CreateProperty inserts a new property for an owner
func CreateProperty(db *sql.DB, property *models.Property) error {
	property.ID = uuid.NewString()
	query := `INSERT INTO properties (id, owner_id, name, address)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at, updated_at`
	err := db.QueryRow(query,
		property.ID,
		property.OwnerID,
		property.Name,
		property.Address,
	).Scan(&property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// GetProperties retrieves all non-archived properties belonging to an owner
func GetProperties(db *sql.DB, ownerID string) ([]models.Property, error) {
	query := `SELECT id, owner_id, name, address, archived, created_at, updated_at
	          FROM properties
	          WHERE owner_id = $1 AND archived = false
	          ORDER BY created_at ASC`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Address,
			&p.Archived, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// GetProperty retrieves a single property by ID within an owner's scope
func GetProperty(db *sql.DB, ownerID, id string) (*models.Property, error) {
	query := `SELECT id, owner_id, name, address, archived, created_at, updated_at
	          FROM properties
	          WHERE id = $1 AND owner_id = $2`

	p := &models.Property{}
	err := db.QueryRow(query, id, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address,
		&p.Archived, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ArchiveProperty soft-deletes a property, keeping its contract history
func ArchiveProperty(db *sql.DB, ownerID, id string) error {
	result, err := db.Exec(
		`UPDATE properties SET archived = true, updated_at = NOW() WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
