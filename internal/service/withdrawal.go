package service

import (
	"context"

	"miniadmin/internal/model"
)

type WithdrawalService struct {
	store Store
}

func NewWithdrawalService(store Store) *WithdrawalService {
	return &WithdrawalService{store: store}
}

// ListAll returns every withdrawal request, unfiltered and unpaged.
func (s *WithdrawalService) ListAll(ctx context.Context) ([]model.WithdrawalRequest, error) {
	requests, err := s.store.ListWithdrawalRequests(ctx)
	if err != nil {
		return nil, storeErr("withdrawal").Wrapf(err, "list withdrawal requests")
	}
	if requests == nil {
		requests = []model.WithdrawalRequest{}
	}
	return requests, nil
}
