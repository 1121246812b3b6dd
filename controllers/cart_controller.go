package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kadima-pos/middleware"
	"kadima-pos/models"
	"kadima-pos/services"
)

type CartController struct {
	carts    *services.CartService
	checkout *services.CheckoutService
}

func NewCartController(carts *services.CartService, checkout *services.CheckoutService) *CartController {
	return &CartController{carts: carts, checkout: checkout}
}

func cartResponse(c *gin.Context, status int, message string, view *models.CartView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    view,
	})
}

// @Summary Open cart
// @Description Start a checkout session for a store of the cashier's merchant
// @Tags Carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCartRequest true "Store to sell from"
// @Success 201 {object} models.Response{data=models.CartView}
// @Failure 403 {object} models.ErrorResponse
// @Router /carts [post]
func (ctrl *CartController) CreateCart(c *gin.Context) {
	var req models.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}
	if req.MerchantID != c.GetString(middleware.CtxMerchantID) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied for this merchant",
		})
		return
	}

	view, err := ctrl.carts.Create(c.Request.Context(), req.MerchantID, req.StoreID, c.GetInt(middleware.CtxUserID))
	cartResponse(c, http.StatusCreated, "Cart created", view, err)
}

// @Summary Get cart
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.carts.Get(c.Request.Context(), c.Param("id"), c.GetInt(middleware.CtxUserID))
	cartResponse(c, http.StatusOK, "Cart retrieved", view, err)
}

// @Summary Discard cart
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /carts/{id} [delete]
func (ctrl *CartController) DiscardCart(c *gin.Context) {
	if err := ctrl.carts.Discard(c.Param("id"), c.GetInt(middleware.CtxUserID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart discarded"})
}

// @Summary Add item
// @Description Add one unit of a product; scanning the same product again increments it
// @Tags Carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body models.AddCartItemRequest true "Product"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /carts/{id}/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	view, err := ctrl.carts.AddItem(c.Request.Context(), c.Param("id"), c.GetInt(middleware.CtxUserID), req.ProductID)
	cartResponse(c, http.StatusOK, "Item added", view, err)
}

// @Summary Remove item
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /carts/{id}/items/{product_id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	view, err := ctrl.carts.RemoveItem(c.Request.Context(), c.Param("id"), c.GetInt(middleware.CtxUserID), c.Param("product_id"))
	cartResponse(c, http.StatusOK, "Item removed", view, err)
}

// @Summary Increment item
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /carts/{id}/items/{product_id}/increment [post]
func (ctrl *CartController) IncrementItem(c *gin.Context) {
	view, err := ctrl.carts.Increment(c.Request.Context(), c.Param("id"), c.GetInt(middleware.CtxUserID), c.Param("product_id"))
	cartResponse(c, http.StatusOK, "Item incremented", view, err)
}

// @Summary Decrement item
// @Description Removes the line when the quantity reaches zero
// @Tags Carts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /carts/{id}/items/{product_id}/decrement [post]
func (ctrl *CartController) DecrementItem(c *gin.Context) {
	view, err := ctrl.carts.Decrement(c.Request.Context(), c.Param("id"), c.GetInt(middleware.CtxUserID), c.Param("product_id"))
	cartResponse(c, http.StatusOK, "Item decremented", view, err)
}

// @Summary Checkout
// @Description Persist the cart as a PENDING_PAYMENT transaction and return the QR payload
// @Tags Carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body models.CheckoutRequest false "Optional customer email for the receipt"
// @Success 201 {object} models.Response{data=models.CheckoutResponse}
// @Failure 409 {object} models.ErrorResponse
// @Router /carts/{id}/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request", err)
			return
		}
	}

	resp, err := ctrl.checkout.Checkout(c.Request.Context(), c.Param("id"), c.GetInt(middleware.CtxUserID), req.CustomerEmail)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Checkout completed, awaiting payment",
		Data:    resp,
	})
}
