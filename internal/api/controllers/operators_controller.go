package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simconnect/internal/models/request_models"
	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

type OperatorsController struct {
	catalogService      services.CatalogServiceInterface
	contributionService services.ContributionServiceInterface
}

func NewOperatorsController(
	catalogService services.CatalogServiceInterface,
	contributionService services.ContributionServiceInterface,
) *OperatorsController {
	return &OperatorsController{
		catalogService:      catalogService,
		contributionService: contributionService,
	}
}

// ListOperators godoc
// @Summary List operators
// @Description Fetch all operators, optionally filtered by country
// @Tags Operators
// @Produce json
// @Param country query string false "Country ID filter"
// @Success 200 {object} utils.APIResponse
// @Router /operators [get]
func (ctrl *OperatorsController) ListOperators(c *gin.Context) {
	operators, err := ctrl.catalogService.ListOperators(c.Request.Context(), c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, operators, "Operators fetched successfully")
}

// AddOperator godoc
// @Summary Contribute an operator
// @Description Add a new operator to the catalog; awards 10 points
// @Tags Operators
// @Accept json
// @Produce json
// @Param request body request_models.AddOperatorRequest true "Operator payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /operators [post]
func (ctrl *OperatorsController) AddOperator(c *gin.Context) {
	var req request_models.AddOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	operator, err := ctrl.contributionService.AddOperator(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, operator, "Operator added successfully")
}

// ListOperatorPlans godoc
// @Summary List plans of an operator
// @Description Fetch the plans sold by an operator, optionally filtered by data bucket
// @Tags Operators
// @Produce json
// @Param id path string true "Operator ID"
// @Param data query string false "Data bucket (all|low|medium|high|ultra)"
// @Success 200 {object} utils.APIResponse
// @Router /operators/{id}/plans [get]
func (ctrl *OperatorsController) ListOperatorPlans(c *gin.Context) {
	plans, err := ctrl.catalogService.ListPlans(c.Request.Context(), c.Param("id"), c.Query("data"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}
