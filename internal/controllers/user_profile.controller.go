package controllers

import (
	"errors"
	"net/http"

	"nutriplan/internal/models"
	"nutriplan/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserProfileController struct {
	profiles repository.UserProfileRepository
	health   repository.UserHealthDataRepository
}

func NewUserProfileController(profiles repository.UserProfileRepository, health repository.UserHealthDataRepository) *UserProfileController {
	return &UserProfileController{profiles: profiles, health: health}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile/me [get]
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	profile, err := pc.profiles.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for the authenticated user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateProfile godoc
// @Summary Create or update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile/me [put]
func (pc *UserProfileController) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := pc.profiles.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   err.Error(),
		})
		return
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	profile.UserID = userID

	if err := pc.profiles.Save(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}

// GetHealthData godoc
// @Summary Get the authenticated user's health data
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Health data retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Health data not found"
// @Router /profile/me/health [get]
func (pc *UserProfileController) GetHealthData(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	health, err := pc.health.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Health data not found",
			"error":   "No health data exists for the authenticated user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health data retrieved successfully",
		"data":    health,
	})
}

// UpdateHealthData godoc
// @Summary Create or update the authenticated user's health data
// @Tags profile
// @Accept json
// @Produce json
// @Param health body models.UserHealthData true "Health data"
// @Success 200 {object} map[string]interface{} "Health data saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to save health data"
// @Router /profile/me/health [put]
func (pc *UserProfileController) UpdateHealthData(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var health models.UserHealthData
	if err := c.ShouldBindJSON(&health); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing, err := pc.health.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load health data",
			"error":   err.Error(),
		})
		return
	}
	if existing != nil {
		health.ID = existing.ID
		health.CreatedAt = existing.CreatedAt
	}
	health.UserID = userID

	if err := pc.health.Save(&health); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save health data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health data saved successfully",
		"data":    health,
	})
}
