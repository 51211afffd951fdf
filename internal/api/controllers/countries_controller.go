package controllers

import (
	"github.com/gin-gonic/gin"

	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

type CountriesController struct {
	catalogService services.CatalogServiceInterface
}

func NewCountriesController(catalogService services.CatalogServiceInterface) *CountriesController {
	return &CountriesController{catalogService: catalogService}
}

// ListCountries godoc
// @Summary List countries
// @Description Fetch all countries in the catalog
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /countries [get]
func (ctrl *CountriesController) ListCountries(c *gin.Context) {
	countries, err := ctrl.catalogService.ListCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

// ListCountryOperators godoc
// @Summary List operators of a country
// @Description Fetch the operators serving a country
// @Tags Countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} utils.APIResponse
// @Router /countries/{id}/operators [get]
func (ctrl *CountriesController) ListCountryOperators(c *gin.Context) {
	operators, err := ctrl.catalogService.ListOperators(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, operators, "Operators fetched successfully")
}
