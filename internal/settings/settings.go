// Package settings manages the boutique's store and receipt configuration,
// persisted as one snapshot blob.
package settings

import (
	"errors"
	"sync"

	"boutique-pos/internal/localstore"
	"boutique-pos/internal/models"
)

const settingsKey = "boutiqueSettings"

// Service loads the settings blob once and rewrites it whole on every save.
type Service struct {
	mu       sync.RWMutex
	store    *localstore.Store
	settings models.Settings
}

// Defaults returns the out-of-the-box boutique configuration.
func Defaults() models.Settings {
	return models.Settings{
		Store: models.StoreSettings{
			Name:    "My Boutique",
			Address: "123 Fashion Street",
			Phone:   "(123) 456-7890",
			Email:   "contact@boutique.com",
		},
		Receipt: models.ReceiptSettings{
			ShowLogo:       true,
			ShowTaxDetails: true,
			FooterText:     "Thank you for shopping with us!",
		},
	}
}

// NewService restores saved settings or falls back to the defaults.
func NewService(store *localstore.Store) (*Service, error) {
	s := &Service{store: store}
	err := store.Load(settingsKey, &s.settings)
	if errors.Is(err, localstore.ErrNoValue) {
		s.settings = Defaults()
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current settings.
func (s *Service) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Save replaces the settings and persists the new snapshot.
func (s *Service) Save(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(settingsKey, settings); err != nil {
		return err
	}
	s.settings = settings
	return nil
}
