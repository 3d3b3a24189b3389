package service

import "context"

type HealthService struct {
	store Store
}

func NewHealthService(store Store) *HealthService {
	return &HealthService{store: store}
}

func (s *HealthService) Check(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return storeErr("health").Wrapf(err, "ping store")
	}
	return nil
}
