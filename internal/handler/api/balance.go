package api

import (
	"net/http"

	reqdto "commerce-core/internal/handler/dto/request"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/handler/httperr"
	"commerce-core/internal/handler/middleware"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	cmds commands.BalanceCommands
	q    queries.BalanceQueries
}

func NewBalanceHandler(cmds commands.BalanceCommands, q queries.BalanceQueries) *BalanceHandler {
	return &BalanceHandler{cmds: cmds, q: q}
}

// @Summary Get balance
// @Description Get the caller's current balance; users without charge history see zero
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "UNAUTHORIZED", "Unauthorized")
		return
	}
	view, err := h.q.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Charge balance
// @Description Add funds to the caller's balance
// @Tags balance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChargeBalanceRequest true "Charge request"
// @Success 200 {object} resdto.ChargeBalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /balance/charge [post]
func (h *BalanceHandler) ChargeBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "UNAUTHORIZED", "Unauthorized")
		return
	}
	var req reqdto.ChargeBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid request")
		return
	}
	result, err := h.cmds.ChargeBalance(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChargeResult(result))
}
