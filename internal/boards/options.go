package boards

import "anonboard/domain"

// WithIDGenerator sets the generator used for reply identifiers.
func WithIDGenerator(g domain.IDGenerator) ServiceOption {
	return func(s *Service) {
		s.idGen = g
	}
}

// WithTimeGetter sets the clock used for creation and bump timestamps.
func WithTimeGetter(t domain.TimeGetter) ServiceOption {
	return func(s *Service) {
		s.clock = t
	}
}

// WithBcryptCost sets the bcrypt cost used for delete passwords. Tests
// lower it to keep hashing fast.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		s.cost = cost
	}
}

// ServiceOption configures the service through the functional options
// pattern.
type ServiceOption func(*Service)
