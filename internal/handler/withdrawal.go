package handler

import (
	"context"
	"log/slog"
	"net/http"

	"miniadmin/internal/model"
)

type WithdrawalService interface {
	ListAll(ctx context.Context) ([]model.WithdrawalRequest, error)
}

type listWithdrawalsResponse struct {
	Withdrawals []model.WithdrawalRequest `json:"withdrawals"`
}

func ListWithdrawalsHandler(withdrawalSvc WithdrawalService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := withdrawalSvc.ListAll(r.Context())
		if err != nil {
			serverError(w, logger, "list withdrawals failed", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, listWithdrawalsResponse{Withdrawals: withdrawals})
	}
}
