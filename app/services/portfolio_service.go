package services

import (
	"database/sql"
	"time"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/engine"
)

// LoadActiveLedgers assembles the engine input for every active contract of an
// owner: the contract plus its payments grouped by period.
func LoadActiveLedgers(db *sql.DB, ownerID string, today time.Time) ([]engine.Ledger, error) {
	contracts, err := database.GetActiveContracts(db, ownerID, today)
	if err != nil {
		return nil, err
	}

	ledgers := make([]engine.Ledger, 0, len(contracts))
	for _, contract := range contracts {
		byPeriod, err := database.GetPaymentsByPeriod(db, contract.ID)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, engine.Ledger{Contract: contract, PaymentsByPeriod: byPeriod})
	}
	return ledgers, nil
}

// LoadPropertyLedgers maps each of the owner's properties to the ledger of its
// current contract, for the per-property dashboard summaries.
func LoadPropertyLedgers(db *sql.DB, ownerID string) (map[string]*engine.Ledger, error) {
	properties, err := database.GetProperties(db, ownerID)
	if err != nil {
		return nil, err
	}

	ledgers := make(map[string]*engine.Ledger, len(properties))
	for _, property := range properties {
		contract, err := database.GetContractForProperty(db, property.ID)
		if err == database.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		byPeriod, err := database.GetPaymentsByPeriod(db, contract.ID)
		if err != nil {
			return nil, err
		}
		ledgers[property.ID] = &engine.Ledger{Contract: *contract, PaymentsByPeriod: byPeriod}
	}
	return ledgers, nil
}
