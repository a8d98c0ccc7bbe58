// Package catalog models the two-level service-provider/service taxonomy
// tickets are filed against. A service belongs to exactly one provider and
// is only selectable once its provider is chosen.
package catalog

import "fmt"

type Provider struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Service struct {
	ID         uint   `json:"id"`
	ProviderID uint   `json:"provider_id"`
	Name       string `json:"name"`
}

// Selection tracks the dependent provider/service choice on a ticket form.
// Changing the provider always resets the service.
type Selection struct {
	providerID uint
	serviceID  uint
}

// SelectProvider sets the provider. Selecting a different provider clears
// any previously selected service; re-selecting the current one keeps it.
func (s *Selection) SelectProvider(providerID uint) {
	if providerID != s.providerID {
		s.serviceID = 0
	}
	s.providerID = providerID
}

// SelectService sets the service. It fails when no provider is selected or
// when the service does not belong to the selected provider.
func (s *Selection) SelectService(svc Service) error {
	if s.providerID == 0 {
		return fmt.Errorf("select a service provider first")
	}
	if svc.ProviderID != s.providerID {
		return fmt.Errorf("service %d does not belong to provider %d", svc.ID, s.providerID)
	}
	s.serviceID = svc.ID
	return nil
}

func (s *Selection) ProviderID() uint {
	return s.providerID
}

func (s *Selection) ServiceID() uint {
	return s.serviceID
}

// Complete reports whether both levels of the taxonomy are chosen.
func (s *Selection) Complete() bool {
	return s.providerID != 0 && s.serviceID != 0
}
