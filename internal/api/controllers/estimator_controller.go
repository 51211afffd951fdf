package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simconnect/internal/models/request_models"
	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

type EstimatorController struct {
	estimatorService services.EstimatorServiceInterface
}

func NewEstimatorController(estimatorService services.EstimatorServiceInterface) *EstimatorController {
	return &EstimatorController{estimatorService: estimatorService}
}

// Estimate godoc
// @Summary Estimate trip data needs
// @Description Project the data volume for a trip and recommend the cheapest covering plan
// @Tags Estimator
// @Accept json
// @Produce json
// @Param request body request_models.EstimateRequest true "Travel profile"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /estimate [post]
func (ctrl *EstimatorController) Estimate(c *gin.Context) {
	var req request_models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	estimate, err := ctrl.estimatorService.Estimate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, estimate, "Estimate computed successfully")
}
