package request

type AddStockRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}
