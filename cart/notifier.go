package cart

import "log"

// Notifier is the user-facing notification channel the engine reports through.
// Cart operations triggered by UI actions surface outcomes here instead of
// returning errors for every button press.
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}

// LogNotifier writes notifications to the process log
type LogNotifier struct{}

func (LogNotifier) Success(message string) { log.Printf("[CART] %s", message) }
func (LogNotifier) Info(message string)    { log.Printf("[CART] %s", message) }
func (LogNotifier) Error(message string)   { log.Printf("[CART] ERROR: %s", message) }
