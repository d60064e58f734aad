package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkshatJain481/1fn-backend/internal/models"
	"github.com/AkshatJain481/1fn-backend/internal/service"
)

type VariantHandler struct {
	variants *service.VariantService
}

func NewVariantHandler(variants *service.VariantService) *VariantHandler {
	return &VariantHandler{variants: variants}
}

// ListVariants godoc
// @Summary List all variants
// @Tags Variants
// @Produce json
// @Success 200 {array} models.Variant
// @Router /api/variants [get]
func (h *VariantHandler) ListVariants(c *gin.Context) {
	variants, err := h.variants.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// GetVariant godoc
// @Summary Get variant by ID
// @Tags Variants
// @Produce json
// @Param id path string true "Variant ObjectId"
// @Success 200 {object} models.Variant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/variants/{id} [get]
func (h *VariantHandler) GetVariant(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	variant, err := h.variants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

// ListVariantsByProduct godoc
// @Summary List variants of a product
// @Tags Variants
// @Produce json
// @Param productId path string true "Product ObjectId"
// @Success 200 {array} models.Variant
// @Failure 400 {object} ErrorResponse
// @Router /api/variants/product/{productId} [get]
func (h *VariantHandler) ListVariantsByProduct(c *gin.Context) {
	productID, ok := parseObjectID(c, "productId")
	if !ok {
		return
	}

	variants, err := h.variants.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// ListVariantsByColor godoc
// @Summary List variants by color
// @Tags Variants
// @Produce json
// @Param color path string true "Color" example(Silver)
// @Success 200 {array} models.Variant
// @Router /api/variants/color/{color} [get]
func (h *VariantHandler) ListVariantsByColor(c *gin.Context) {
	variants, err := h.variants.ListByColor(c.Request.Context(), c.Param("color"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// ListVariantsByStorage godoc
// @Summary List variants by storage capacity
// @Tags Variants
// @Produce json
// @Param storage path string true "Storage" example(256GB)
// @Success 200 {array} models.Variant
// @Router /api/variants/storage/{storage} [get]
func (h *VariantHandler) ListVariantsByStorage(c *gin.Context) {
	variants, err := h.variants.ListByStorage(c.Request.Context(), c.Param("storage"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// CheckStock godoc
// @Summary Check variant stock
// @Description True only when the variant is flagged in stock and has quantity available
// @Tags Variants
// @Produce json
// @Param id path string true "Variant ObjectId"
// @Success 200 {object} models.StockStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/variants/{id}/stock [get]
func (h *VariantHandler) CheckStock(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	inStock, err := h.variants.CheckStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StockStatus{InStock: inStock})
}

// CreateVariant godoc
// @Summary Create a variant
// @Description Adds a storage/color configuration and appends it to the owning product
// @Tags Variants
// @Accept json
// @Produce json
// @Param request body models.CreateVariantRequest true "New variant"
// @Success 201 {object} models.Variant
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/variants [post]
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	var req models.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	variant, err := h.variants.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, variant)
}

// UpdateVariant godoc
// @Summary Update a variant
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Variant ObjectId"
// @Param request body models.UpdateVariantRequest true "Fields to update"
// @Success 200 {object} models.Variant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/variants/{id} [put]
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	variant, err := h.variants.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

// DeleteVariant godoc
// @Summary Delete a variant
// @Description Removes the variant and pulls its id from the owning product
// @Tags Variants
// @Param id path string true "Variant ObjectId"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/variants/{id} [delete]
func (h *VariantHandler) DeleteVariant(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.variants.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
