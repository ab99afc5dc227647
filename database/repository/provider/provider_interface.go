package providerRepo

import "snapfix/models"

// ProviderFilter narrows a provider listing. A nil/empty category set means
// no category constraint. The listing contract only ever returns providers
// currently accepting new requests.
type ProviderFilter struct {
	Categories        []models.ServiceCategory
	IncludeUnverified bool
}

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// List retrieves providers that accept new requests, optionally filtered
	// by category. Unverified providers are included only when the filter
	// asks for them.
	List(filter ProviderFilter) ([]models.Provider, error)
	// Create inserts a new provider record at onboarding.
	Create(provider *models.Provider) error
	// Update modifies an existing provider record.
	Update(provider *models.Provider) error
	// UpdateStatus applies a soft status change. Providers are never hard
	// deleted.
	UpdateStatus(id string, status models.ProviderStatus, acceptsNewRequests bool) error
	// IncrementCompletedJobs bumps the historical job counter.
	IncrementCompletedJobs(id string) error
}
