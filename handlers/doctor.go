package handlers

import (
	"net/http"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DoctorHandler serves the public doctor directory and staff CRUD.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

// ListDoctors handles GET /api/doctors.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch doctors", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// CreateDoctor handles POST /api/staff/doctors.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input struct {
		FullName  string `json:"full_name" binding:"required"`
		Title     string `json:"title"`
		Specialty string `json:"specialty"`
		Bio       string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	doctor := &models.Doctor{
		ID:        uuid.New().String(),
		FullName:  input.FullName,
		Title:     input.Title,
		Specialty: input.Specialty,
		Bio:       input.Bio,
		IsActive:  true,
	}
	if err := h.Repo.Create(c.Request.Context(), doctor); err != nil {
		utils.GetLogger().Error("failed to create doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create doctor", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"doctor": doctor})
}

// UpdateDoctor handles PUT /api/staff/doctors/:id.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	doctor.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), &doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", "")
			return
		}
		utils.GetLogger().Error("failed to update doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}
