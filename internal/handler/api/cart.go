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

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Add to cart
// @Description Add a product option to the caller's cart, merging quantities on repeat adds
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Add to cart request"
// @Success 200 {object} resdto.AddToCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "UNAUTHORIZED", "Unauthorized")
		return
	}
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", "Invalid request")
		return
	}
	result, err := h.cmds.AddToCart(c.Request.Context(), userID, req.ProductOptionID, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AddToCartResponse{
		Item:      resdto.FromCartItemDetail(result.Item),
		IsNewItem: result.IsNewItem,
	})
}

// @Summary List cart
// @Description List the caller's cart items with live product and availability data
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CartItemResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart/items [get]
func (h *CartHandler) ListItems(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "UNAUTHORIZED", "Unauthorized")
		return
	}
	details, err := h.q.ListCart(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartItemDetails(details))
}
