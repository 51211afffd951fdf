package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simconnect/internal/models/request_models"
	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

type AdvisorController struct {
	advisorService services.AdvisorServiceInterface
}

func NewAdvisorController(advisorService services.AdvisorServiceInterface) *AdvisorController {
	return &AdvisorController{advisorService: advisorService}
}

// Advise godoc
// @Summary Ask the travel SIM advisor
// @Description Relay a free-text question to the language-model advisor with catalog context
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body request_models.AdviceRequest true "Question"
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /advice [post]
func (ctrl *AdvisorController) Advise(c *gin.Context) {
	var req request_models.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	advice, err := ctrl.advisorService.Advise(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, advice, "Advice generated successfully")
}
