package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kadima-pos/libs"
	"kadima-pos/models"
	"kadima-pos/services"
)

type StoreController struct {
	catalog       *services.CatalogService
	maxUploadSize int64
}

func NewStoreController(catalog *services.CatalogService, maxUploadSize int64) *StoreController {
	return &StoreController{catalog: catalog, maxUploadSize: maxUploadSize}
}

// @Summary Get store
// @Tags Stores
// @Security BearerAuth
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param store_id path string true "Store ID"
// @Success 200 {object} models.Response{data=models.Store}
// @Failure 404 {object} models.ErrorResponse
// @Router /merchants/{merchant_id}/stores/{store_id} [get]
func (ctrl *StoreController) GetStore(c *gin.Context) {
	store, err := ctrl.catalog.GetStore(c.Request.Context(), c.Param("merchant_id"), c.Param("store_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Store retrieved successfully",
		Data:    store,
	})
}

// @Summary Upload store logo
// @Tags Admin - Stores
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param store_id path string true "Store ID"
// @Param image formData file true "Logo image"
// @Success 200 {object} models.Response{data=models.Store}
// @Router /admin/merchants/{merchant_id}/stores/{store_id}/logo [post]
func (ctrl *StoreController) UploadLogo(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "Image file is required", err)
		return
	}
	if err := libs.ValidateImageFile(header, ctrl.maxUploadSize); err != nil {
		badRequest(c, "Invalid image", err)
		return
	}

	file, err := header.Open()
	if err != nil {
		badRequest(c, "Failed to read image", err)
		return
	}
	defer file.Close()

	store, err := ctrl.catalog.UpdateStoreLogo(c.Request.Context(), c.Param("merchant_id"), c.Param("store_id"), file, header.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Store logo updated successfully",
		Data:    store,
	})
}
