package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kadima-pos/middleware"
	"kadima-pos/models"
	"kadima-pos/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// @Summary Get store products
// @Description Active products of a store, served from the product list cache when warm
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param store_id path string true "Store ID"
// @Success 200 {object} models.Response{data=[]models.Product}
// @Router /merchants/{merchant_id}/stores/{store_id}/products [get]
func (ctrl *ProductController) GetStoreProducts(c *gin.Context) {
	products, err := ctrl.catalog.ListProducts(c.Request.Context(), c.Param("merchant_id"), c.Param("store_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param store_id path string true "Store ID"
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response{data=models.Product}
// @Router /admin/merchants/{merchant_id}/stores/{store_id}/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	product, err := ctrl.catalog.CreateProduct(c.Request.Context(), c.Param("merchant_id"), c.Param("store_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.Response{data=models.Product}
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	product, err := ctrl.catalog.UpdateProduct(c.Request.Context(), c.GetString(middleware.CtxMerchantID), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// @Summary Delete product
// @Description Deactivates the product so it leaves the store's product list
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.catalog.DeleteProduct(c.Request.Context(), c.GetString(middleware.CtxMerchantID), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}
