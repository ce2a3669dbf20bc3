package services

import (
	"context"
	"log"
	"time"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/sheets"
)

// StartStoreMonitor launches the background connectivity probe. It only
// logs: request serving never waits on it, and a failed probe never stops
// the process.
func StartStoreMonitor(store sheets.Store, interval time.Duration) {
	go func() {
		log.Println("Table store monitor started...")
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if _, err := store.Table(ctx, "Authentication", "A1:B1"); err != nil {
				log.Printf("Table store unreachable: %v", err)
			}
			cancel()
		}
	}()
}
