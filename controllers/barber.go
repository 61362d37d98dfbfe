// controllers/barber.go
package controllers

import (
	"errors"
	"mestar-backend/config"
	"mestar-backend/models"
	"mestar-backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBarberInput struct {
	Name        string   `json:"name" binding:"required"`
	Bio         string   `json:"bio"`
	AvatarURL   string   `json:"avatarUrl"`
	Specialties []string `json:"specialties"`
}

type UpdateBarberInput struct {
	Name        *string   `json:"name"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatarUrl"`
	Specialties *[]string `json:"specialties"`
	IsActive    *bool     `json:"isActive"`
}

// CreateBarber adds a barber to the roster (admin only)
func CreateBarber(c *gin.Context) {
	var input CreateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barber := models.Barber{
		Name:        input.Name,
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		Specialties: input.Specialties,
		IsActive:    true,
	}

	if err := config.DB.Create(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barber")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// GetBarbers lists active barbers. Public.
func GetBarbers(c *gin.Context) {
	var barbers []models.Barber
	query := config.DB.Where("is_active = ?", true)
	if c.Query("all") == "true" {
		query = config.DB
	}
	if err := query.Order("name").Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve barbers")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// GetBarber retrieves a specific barber by ID
func GetBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var barber models.Barber
	if err := config.DB.First(&barber, "id = ?", barberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, barber)
}

// UpdateBarber updates an existing barber (admin only)
func UpdateBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var input UpdateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var barber models.Barber
	if err := config.DB.First(&barber, "id = ?", barberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		barber.Name = *input.Name
	}
	if input.Bio != nil {
		barber.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		barber.AvatarURL = *input.AvatarURL
	}
	if input.Specialties != nil {
		barber.Specialties = *input.Specialties
	}
	if input.IsActive != nil {
		barber.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update barber")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// DeleteBarber deactivates a barber; their past schedule stays intact.
func DeleteBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	result := config.DB.Model(&models.Barber{}).
		Where("id = ?", barberUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete barber")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deactivated successfully"})
}
