package handlers

import (
	"net/http"

	"clinicbook/services/user"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Svc user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		if err == user.ErrEmailTaken {
			utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
			return
		}
		utils.GetLogger().Warn("registration rejected", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Me handles GET /api/users/me for the signed-in account.
func (h *AuthHandler) Me(c *gin.Context) {
	usr, err := h.Svc.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.GetLogger().Error("failed to fetch account", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch account", "")
		return
	}
	if usr == nil {
		utils.JSONError(c, http.StatusNotFound, "account not found", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if err == user.ErrInvalidCredentials {
			utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
			return
		}
		utils.GetLogger().Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
