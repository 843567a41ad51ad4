package services

// TimerSvc schedules per-transaction countdowns. The collaborator supplies
// the callbacks; the service supplies the one-tick-per-second scheduling.
// At most one timer is active per transaction ID: starting again replaces
// the previous countdown, and Stop is safe to call when nothing is running.
type TimerSvc interface {
	Start(transactionID string, remainingSeconds int, onTick func(remaining int), onExpire func())
	Stop(transactionID string)

	// StopAll cancels every outstanding countdown. Called on session reset so
	// a stale tick can never mutate a future session.
	StopAll()
}
