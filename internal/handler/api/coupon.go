package api

import (
	"net/http"

	reqdto "commerce-core/internal/handler/dto/request"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/handler/httperr"
	"commerce-core/internal/handler/middleware"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	cmds commands.CouponCommands
}

func NewCouponHandler(cmds commands.CouponCommands) *CouponHandler {
	return &CouponHandler{cmds: cmds}
}

// @Summary Create coupon
// @Description Create a coupon definition together with its full ticket inventory
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CreateCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid request")
		return
	}
	couponID, err := h.cmds.CreateCoupon(c.Request.Context(), req.ToParams())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateCouponResponse{CouponID: couponID})
}

// @Summary Issue coupon
// @Description Issue one ticket of the coupon to the caller, at most once per user
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param couponId path string true "Coupon ID"
// @Success 200 {object} resdto.IssueCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /coupons/{couponId}/issue [post]
func (h *CouponHandler) Issue(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("couponId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid coupon id")
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "UNAUTHORIZED", "Unauthorized")
		return
	}
	ticketID, err := h.cmds.IssueCoupon(c.Request.Context(), couponID, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.IssueCouponResponse{TicketID: ticketID})
}
