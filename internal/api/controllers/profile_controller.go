package controllers

import (
	"github.com/gin-gonic/gin"

	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the contributor profile
// @Description Fetch the profile with points, derived level and badges
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	profile, err := ctrl.profileService.GetProfile(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}
