package request

// Charge bounds are a boundary policy; the ledger itself only requires a
// positive amount.
type ChargeBalanceRequest struct {
	Amount int64 `json:"amount" binding:"required,gte=1000,lte=1000000"`
}
