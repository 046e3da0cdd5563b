package response

import (
	"time"

	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	UserID        uuid.UUID  `json:"userId"`
	Amount        int64      `json:"amount"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}

func FromBalanceView(view *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		UserID:        view.UserID,
		Amount:        view.Amount,
		LastUpdatedAt: view.LastUpdatedAt,
	}
}

type ChargeBalanceResponse struct {
	UserID          uuid.UUID `json:"userId"`
	PreviousBalance int64     `json:"previousBalance"`
	ChargeAmount    int64     `json:"chargeAmount"`
	CurrentBalance  int64     `json:"currentBalance"`
	ChargedAt       time.Time `json:"chargedAt"`
}

func FromChargeResult(result *commands.ChargeResult) *ChargeBalanceResponse {
	return &ChargeBalanceResponse{
		UserID:          result.UserID,
		PreviousBalance: result.PreviousBalance,
		ChargeAmount:    result.ChargeAmount,
		CurrentBalance:  result.CurrentBalance,
		ChargedAt:       result.ChargedAt,
	}
}
