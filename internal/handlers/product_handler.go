package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkshatJain481/1fn-backend/internal/models"
	"github.com/AkshatJain481/1fn-backend/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts godoc
// @Summary List all products
// @Description Retrieve all products with populated variants and EMI plans
// @Tags Products
// @Produce json
// @Success 200 {array} models.ProductDetail
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ObjectId"
// @Success 200 {object} models.ProductDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductBySlug godoc
// @Summary Get product by slug
// @Description Retrieve a product using its SEO-friendly slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug" example(iphone-17-pro)
// @Success 200 {object} models.ProductDetail
// @Failure 404 {object} ErrorResponse
// @Router /api/products/slug/{slug} [get]
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListProductsByCategory godoc
// @Summary List products by category
// @Tags Products
// @Produce json
// @Param category path string true "Category" example(smartphones)
// @Success 200 {array} models.ProductDetail
// @Router /api/products/category/{category} [get]
func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	products, err := h.products.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts godoc
// @Summary Search products
// @Description Full-text search over product name and description
// @Tags Products
// @Produce json
// @Param q query string true "Search query" example(iphone)
// @Success 200 {array} models.ProductDetail
// @Failure 400 {object} ErrorResponse
// @Router /api/products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter q is required"})
		return
	}

	products, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "New product"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update; returns the updated product with populated references
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ObjectId"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ProductDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes the product and cascades to its variants and EMI plans
// @Tags Products
// @Param id path string true "Product ObjectId"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
