package services

import (
	"database/sql"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// CreateContract validates the rent terms and creates a contract for one of
// the owner's properties. If the property already has an active contract it is
// superseded in the same transaction, never deleted, so payment history stays
// intact.
func CreateContract(db *sql.DB, emitter EventEmitter, ownerID string, contract *models.Contract) error {
	contract.OwnerID = ownerID
	if errs := contract.Validate(); errs.HasErrors() {
		return errs
	}

	// The property must exist inside the acting owner's scope.
	if _, err := database.GetProperty(db, ownerID, contract.PropertyID); err != nil {
		return err
	}

	superseded, err := database.GetContractForProperty(db, contract.PropertyID)
	if err != nil && err != database.ErrNotFound {
		return err
	}

	if err := database.CreateContract(db, contract); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"contract_id": contract.ID,
		"property_id": contract.PropertyID,
		"tenant_id":   contract.TenantID,
	}
	if superseded != nil {
		payload["superseded_contract_id"] = superseded.ID
	}
	emitter.Emit("contract.created", payload)
	return nil
}
