// controllers/auth_controller.go
package controllers

import (
	"log"
	"net/http"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"

	"github.com/gin-gonic/gin"
)

type SignUpPayload struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// SignUp (POST /api/auth/signup)
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var payload SignUpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	profile, token, err := ctrl.AuthSvc.SignUp(payload.Email, payload.Password, payload.FirstName, payload.LastName)
	if err != nil {
		switch err.Error() {
		case "email_taken":
			utils.JSONError(c, http.StatusConflict, "an account with this email already exists")
		default:
			if isValidationError(err) {
				utils.JSONError(c, http.StatusBadRequest, err.Error())
				return
			}
			log.Printf("SignUp error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "could not create account")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"profile": profile, "token": token})
}

// Login (POST /api/auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	profile, token, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		if err.Error() == "invalid_credentials" {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		log.Printf("Login error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not sign in")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"profile": profile, "token": token})
}

// Me (GET /api/auth/me) returns the signed-in profile.
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := CurrentUserID(c)

	profile, err := ctrl.AuthSvc.GetProfile(userID)
	if err != nil {
		if err.Error() == "profile_not_found" {
			utils.JSONNotFound(c, "profile not found")
			return
		}
		log.Printf("Me error for user %d: %v", userID, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load profile")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, profile)
}
