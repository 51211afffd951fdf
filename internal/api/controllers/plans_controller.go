package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"simconnect/internal/models/request_models"
	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

type PlansController struct {
	catalogService      services.CatalogServiceInterface
	contributionService services.ContributionServiceInterface
}

func NewPlansController(
	catalogService services.CatalogServiceInterface,
	contributionService services.ContributionServiceInterface,
) *PlansController {
	return &PlansController{
		catalogService:      catalogService,
		contributionService: contributionService,
	}
}

// ListPlans godoc
// @Summary List plans
// @Description Fetch all plans, optionally filtered by operator and data bucket
// @Tags Plans
// @Produce json
// @Param operator query string false "Operator ID filter"
// @Param data query string false "Data bucket (all|low|medium|high|ultra)"
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (ctrl *PlansController) ListPlans(c *gin.Context) {
	plans, err := ctrl.catalogService.ListPlans(c.Request.Context(), c.Query("operator"), c.Query("data"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// AddPlan godoc
// @Summary Contribute a plan
// @Description Add a new plan to the catalog; awards 5 points
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.AddPlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans [post]
func (ctrl *PlansController) AddPlan(c *gin.Context) {
	var req request_models.AddPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := ctrl.contributionService.AddPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan added successfully")
}

// ComparePlans godoc
// @Summary Compare plans
// @Description Compare 2-8 plans side by side; format=csv returns a CSV export
// @Tags Plans
// @Produce json
// @Param ids query string true "Comma-separated plan IDs"
// @Param format query string false "Response format (json|csv)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/compare [get]
func (ctrl *PlansController) ComparePlans(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing ids parameter")
		return
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	if c.Query("format") == "csv" {
		csv, err := ctrl.catalogService.ComparePlansCSV(c.Request.Context(), ids)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="global_sim_comparison.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
		return
	}

	comparison, err := ctrl.catalogService.ComparePlans(c.Request.Context(), ids)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comparison, "Comparison built successfully")
}

// ListReviews godoc
// @Summary List reviews of a plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Router /plans/{id}/reviews [get]
func (ctrl *PlansController) ListReviews(c *gin.Context) {
	reviews, err := ctrl.catalogService.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// AddReview godoc
// @Summary Review a plan
// @Description Add a review for a plan; awards 2 points
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/{id}/reviews [post]
func (ctrl *PlansController) AddReview(c *gin.Context) {
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := ctrl.contributionService.AddReview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review added successfully")
}
