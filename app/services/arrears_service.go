package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/engine"
)

// LogArrearsSummary computes the outstanding aging buckets for every owner
// with active contracts and writes one log line per owner. Read-only; the
// figures are recomputed from scratch against the given reference date.
func LogArrearsSummary(db *sql.DB, today time.Time) error {
	log.Println("Starting arrears summary generation...")

	owners, err := database.GetOwnersWithContracts(db)
	if err != nil {
		return fmt.Errorf("failed to list owners: %w", err)
	}

	for _, owner := range owners {
		ledgers, err := LoadActiveLedgers(db, owner, today)
		if err != nil {
			log.Printf("Failed to load ledgers for owner %s: %v", owner, err)
			continue
		}

		buckets := engine.OutstandingAging(ledgers, today)
		log.Printf("Arrears for owner %s: current=%s 0-7d=%s 8-30d=%s 31+d=%s",
			owner, buckets.Current, buckets.Days0to7, buckets.Days8to30, buckets.Days31Plus)
	}

	log.Printf("Arrears summary completed for %d owners.", len(owners))
	return nil
}
