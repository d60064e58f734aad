package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AkshatJain481/1fn-backend/internal/models"
	"github.com/AkshatJain481/1fn-backend/internal/service"
)

type EmiPlanHandler struct {
	plans *service.EmiPlanService
}

func NewEmiPlanHandler(plans *service.EmiPlanService) *EmiPlanHandler {
	return &EmiPlanHandler{plans: plans}
}

// ListEmiPlans godoc
// @Summary List all active EMI plans
// @Description Active plans sorted by tenure ascending
// @Tags EMI Plans
// @Produce json
// @Success 200 {array} models.EmiPlan
// @Router /api/emi-plans [get]
func (h *EmiPlanHandler) ListEmiPlans(c *gin.Context) {
	plans, err := h.plans.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetEmiPlan godoc
// @Summary Get EMI plan by ID
// @Tags EMI Plans
// @Produce json
// @Param id path string true "EMI plan ObjectId"
// @Success 200 {object} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/emi-plans/{id} [get]
func (h *EmiPlanHandler) GetEmiPlan(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	plan, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListEmiPlansByProduct godoc
// @Summary List active EMI plans of a product
// @Tags EMI Plans
// @Produce json
// @Param productId path string true "Product ObjectId"
// @Success 200 {array} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Router /api/emi-plans/product/{productId} [get]
func (h *EmiPlanHandler) ListEmiPlansByProduct(c *gin.Context) {
	productID, ok := parseObjectID(c, "productId")
	if !ok {
		return
	}

	plans, err := h.plans.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListRecommendedEmiPlans godoc
// @Summary List recommended EMI plans of a product
// @Tags EMI Plans
// @Produce json
// @Param productId path string true "Product ObjectId"
// @Success 200 {array} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Router /api/emi-plans/product/{productId}/recommended [get]
func (h *EmiPlanHandler) ListRecommendedEmiPlans(c *gin.Context) {
	productID, ok := parseObjectID(c, "productId")
	if !ok {
		return
	}

	plans, err := h.plans.ListRecommended(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetCheapestEmiPlan godoc
// @Summary Get the cheapest EMI plan of a product
// @Description The active plan with the lowest monthly payment
// @Tags EMI Plans
// @Produce json
// @Param productId path string true "Product ObjectId"
// @Success 200 {object} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/emi-plans/product/{productId}/cheapest [get]
func (h *EmiPlanHandler) GetCheapestEmiPlan(c *gin.Context) {
	productID, ok := parseObjectID(c, "productId")
	if !ok {
		return
	}

	plan, err := h.plans.Cheapest(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListEmiPlansSorted godoc
// @Summary List a product's EMI plans sorted by monthly payment
// @Tags EMI Plans
// @Produce json
// @Param productId path string true "Product ObjectId"
// @Param order query string false "Sort order" Enums(asc, desc) default(asc)
// @Success 200 {array} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Router /api/emi-plans/product/{productId}/sorted [get]
func (h *EmiPlanHandler) ListEmiPlansSorted(c *gin.Context) {
	productID, ok := parseObjectID(c, "productId")
	if !ok {
		return
	}

	ascending := strings.ToLower(c.DefaultQuery("order", "asc")) != "desc"
	plans, err := h.plans.SortedByPayment(c.Request.Context(), productID, ascending)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListEmiPlansByTenure godoc
// @Summary List active EMI plans by tenure
// @Tags EMI Plans
// @Produce json
// @Param tenure path int true "Tenure in months" example(12)
// @Success 200 {array} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Router /api/emi-plans/tenure/{tenure} [get]
func (h *EmiPlanHandler) ListEmiPlansByTenure(c *gin.Context) {
	tenure, err := strconv.Atoi(c.Param("tenure"))
	if err != nil || tenure < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "tenure must be a positive integer"})
		return
	}

	plans, err := h.plans.ListByTenure(c.Request.Context(), tenure)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListZeroInterestEmiPlans godoc
// @Summary List active zero-interest EMI plans
// @Tags EMI Plans
// @Produce json
// @Success 200 {array} models.EmiPlan
// @Router /api/emi-plans/zero-interest [get]
func (h *EmiPlanHandler) ListZeroInterestEmiPlans(c *gin.Context) {
	plans, err := h.plans.ListZeroInterest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// CreateEmiPlan godoc
// @Summary Create an EMI plan
// @Description Persists the plan and appends it to the owning product
// @Tags EMI Plans
// @Accept json
// @Produce json
// @Param request body models.CreateEmiPlanRequest true "New EMI plan"
// @Success 201 {object} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Router /api/emi-plans [post]
func (h *EmiPlanHandler) CreateEmiPlan(c *gin.Context) {
	var req models.CreateEmiPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdateEmiPlan godoc
// @Summary Update an EMI plan
// @Tags EMI Plans
// @Accept json
// @Produce json
// @Param id path string true "EMI plan ObjectId"
// @Param request body models.UpdateEmiPlanRequest true "Fields to update"
// @Success 200 {object} models.EmiPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/emi-plans/{id} [put]
func (h *EmiPlanHandler) UpdateEmiPlan(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateEmiPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	plan, err := h.plans.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteEmiPlan godoc
// @Summary Delete an EMI plan
// @Description Removes the plan and pulls its id from the owning product
// @Tags EMI Plans
// @Param id path string true "EMI plan ObjectId"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/emi-plans/{id} [delete]
func (h *EmiPlanHandler) DeleteEmiPlan(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
