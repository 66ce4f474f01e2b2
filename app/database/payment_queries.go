package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// CreatePayment records a tenant submission toward one rent period
func CreatePayment(db *sql.DB, payment *models.Payment) error {
	payment.ID = uuid.NewString()
	payment.Status = models.PaymentPending
	query := `INSERT INTO payments (id, contract_id, payment_number, amount, status, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at`
	err := db.QueryRow(query,
		payment.ID,
		payment.ContractID,
		payment.PaymentNumber,
		payment.Amount,
		string(payment.Status),
		payment.SubmittedAt,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetPayment retrieves a single payment by ID
func GetPayment(db *sql.DB, id string) (*models.Payment, error) {
	query := `SELECT id, contract_id, payment_number, amount, status, rejection_reason, submitted_at, created_at
	          FROM payments WHERE id = $1`

	p := &models.Payment{}
	var status string
	err := db.QueryRow(query, id).Scan(
		&p.ID, &p.ContractID, &p.PaymentNumber, &p.Amount,
		&status, &p.RejectionReason, &p.SubmittedAt, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return p, nil
}

// GetPaymentsForContract retrieves all payments of a contract in submission order
func GetPaymentsForContract(db *sql.DB, contractID string) ([]models.Payment, error) {
	query := `SELECT id, contract_id, payment_number, amount, status, rejection_reason, submitted_at, created_at
	          FROM payments
	          WHERE contract_id = $1
	          ORDER BY submitted_at ASC`

	rows, err := db.Query(query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var status string
		if err := rows.Scan(
			&p.ID, &p.ContractID, &p.PaymentNumber, &p.Amount,
			&status, &p.RejectionReason, &p.SubmittedAt, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Status = models.PaymentStatus(status)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentsByPeriod retrieves a contract's payments grouped by period number
func GetPaymentsByPeriod(db *sql.DB, contractID string) (map[int][]models.Payment, error) {
	payments, err := GetPaymentsForContract(db, contractID)
	if err != nil {
		return nil, err
	}

	byPeriod := make(map[int][]models.Payment)
	for _, p := range payments {
		byPeriod[p.PaymentNumber] = append(byPeriod[p.PaymentNumber], p)
	}
	return byPeriod, nil
}

// UpdatePaymentStatus applies a review verdict to a payment. The rejection
// reason must be present exactly when the status is rejected; the table CHECK
// backs the same invariant.
func UpdatePaymentStatus(db *sql.DB, id string, status models.PaymentStatus, reason *string) error {
	result, err := db.Exec(
		`UPDATE payments SET status = $1, rejection_reason = $2 WHERE id = $3`,
		string(status), reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
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
