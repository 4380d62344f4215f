package handlers

import (
	"net/http"

	treatmentRepo "clinicbook/database/repository/treatment"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TreatmentHandler serves the public treatment catalogue and staff CRUD.
type TreatmentHandler struct {
	Repo treatmentRepo.TreatmentRepository
}

func NewTreatmentHandler(repo treatmentRepo.TreatmentRepository) *TreatmentHandler {
	return &TreatmentHandler{Repo: repo}
}

// ListTreatments handles GET /api/treatments.
func (h *TreatmentHandler) ListTreatments(c *gin.Context) {
	treatments, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list treatments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch treatments", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatments": treatments})
}

// CreateTreatment handles POST /api/staff/treatments.
func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var input struct {
		Name            string `json:"name" binding:"required"`
		DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
		IsConsultation  bool   `json:"is_consultation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	treatment := &models.Treatment{
		ID:              uuid.New().String(),
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		IsConsultation:  input.IsConsultation,
		IsActive:        true,
	}
	if err := h.Repo.Create(c.Request.Context(), treatment); err != nil {
		utils.GetLogger().Error("failed to create treatment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create treatment", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"treatment": treatment})
}

// UpdateTreatment handles PUT /api/staff/treatments/:id.
func (h *TreatmentHandler) UpdateTreatment(c *gin.Context) {
	var treatment models.Treatment
	if err := c.ShouldBindJSON(&treatment); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	treatment.ID = c.Param("id")
	if treatment.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration_minutes must be positive")
		return
	}

	if err := h.Repo.Update(c.Request.Context(), &treatment); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "treatment not found", "")
			return
		}
		utils.GetLogger().Error("failed to update treatment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update treatment", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatment": treatment})
}
