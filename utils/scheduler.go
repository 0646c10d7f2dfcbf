package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"learnflow/services"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepStaleCheckouts reaps wizard flows abandoned for over half an hour
func sweepStaleCheckouts() {
	if swept := services.Checkouts.Sweep(30 * time.Minute); swept > 0 {
		logScheduler("Swept stale checkout flows")
	}
}

// evictIdleCarts releases cart engines untouched for a day. Their items stay
// in durable storage and reload on the next request.
func evictIdleCarts() {
	if evicted := services.Carts.EvictIdle(24 * time.Hour); evicted > 0 {
		logScheduler("Evicted idle cart engines")
	}
}

// StartSchedulers launches the background maintenance jobs
func StartSchedulers() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 10m", sweepStaleCheckouts); err != nil {
		log.Fatalf("Failed to schedule checkout sweep: %v", err)
	}
	if _, err := c.AddFunc("@hourly", evictIdleCarts); err != nil {
		log.Fatalf("Failed to schedule cart eviction: %v", err)
	}

	c.Start()
	logScheduler("Schedulers started")
	return c
}
