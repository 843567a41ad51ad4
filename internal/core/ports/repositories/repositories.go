package repositories

// RepositoryProvider aggregates all repository implementations for service
// container initialization.
type RepositoryProvider struct {
	Session SessionRepository
}
