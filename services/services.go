// Package services wires the application singletons together from config,
// mirroring how config.AppConfig and database.Database are shared globals.
package services

import (
	"time"

	"learnflow/cart"
	"learnflow/checkout"
	"learnflow/config"
	"learnflow/database"
	"learnflow/payment"
	"learnflow/progress"
	"learnflow/search"
	"learnflow/store"
	"learnflow/store/kv"
)

var (
	Catalog     store.CatalogStore
	Enrollments store.EnrollmentStore
	Carts       *cart.Manager
	Checkouts   *checkout.Manager
	Payments    *payment.Client
	Tracker     *progress.Tracker
	Suggest     *search.Suggester
	Suggestions *search.Board
)

// Init builds the service singletons. Must run after config.LoadConfig and
// database.ConnectDb.
func Init() {
	cfg := config.AppConfig

	chaos := store.NewChaos(
		time.Duration(cfg.CatalogLatencyMs)*time.Millisecond,
		cfg.CatalogFailureRate,
	)
	Catalog = store.NewMemoryCatalog(store.SeedCourses(), chaos)
	Enrollments = store.NewMemoryEnrollments(store.SeedEnrollments(), chaos)

	cartStorage := kv.NewGorm(database.Database.Db)
	Carts = cart.NewManager(cartStorage, cfg.CartStorageKey, cart.WithTaxRate(cfg.TaxRate))

	Payments = payment.NewClient(payment.Config{
		BaseURL:    cfg.PaymentApiURL,
		ApiKey:     cfg.PaymentApiKey,
		SecretKey:  cfg.PaymentSecretKey,
		ApiVersion: cfg.PaymentApiVersion,
		Delay:      time.Duration(cfg.PaymentDelayMs) * time.Millisecond,
	})
	Checkouts = checkout.NewManager(Payments)

	Tracker = progress.NewTracker(Enrollments)

	Suggestions = search.NewBoard()
	Suggest = search.NewSuggester(
		Catalog.Search,
		Suggestions.Set,
		time.Duration(cfg.SuggestDebounceMs)*time.Millisecond,
		5,
	)
}
