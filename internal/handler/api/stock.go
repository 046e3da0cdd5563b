package api

import (
	"net/http"
	"strings"

	reqdto "commerce-core/internal/handler/dto/request"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/handler/httperr"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingOptionIDs = errs.New("optionIds query parameter is required")

type StockHandler struct {
	cmds commands.StockCommands
	q    queries.StockQueries
}

func NewStockHandler(cmds commands.StockCommands, q queries.StockQueries) *StockHandler {
	return &StockHandler{cmds: cmds, q: q}
}

// @Summary Add stock
// @Description Increase the total quantity of a product option, up to its cap
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param optionId path string true "Product option ID"
// @Param request body reqdto.AddStockRequest true "Add stock request"
// @Success 200 {object} resdto.AddStockResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /stock/{optionId}/add [post]
func (h *StockHandler) AddStock(c *gin.Context) {
	optionID, err := uuid.Parse(c.Param("optionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid option id")
		return
	}
	var req reqdto.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid request")
		return
	}
	newQuantity, err := h.cmds.AddStock(c.Request.Context(), optionID, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AddStockResponse{OptionID: optionID, NewQuantity: newQuantity})
}

// @Summary Get available stock
// @Description Batched availability lookup; unknown option ids report zero
// @Tags stock
// @Produce json
// @Param optionIds query string true "Comma-separated product option IDs"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /stock/available [get]
func (h *StockHandler) GetAvailable(c *gin.Context) {
	raw := c.Query("optionIds")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingOptionIDs, "INVALID_ARGUMENT", "optionIds is required")
		return
	}
	parts := strings.Split(raw, ",")
	optionIDs := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid option id: "+p)
			return
		}
		optionIDs = append(optionIDs, id)
	}
	views, err := h.q.GetAvailable(c.Request.Context(), optionIDs)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(views))
}
