package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devnetwork-backend/internal/domains/profile"
	"devnetwork-backend/internal/infrastructure/github"
	"devnetwork-backend/internal/shared/middleware"
	"devnetwork-backend/internal/shared/response"
	"devnetwork-backend/pkg/logger"
)

type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetOwnProfile handles GET /api/profile/me
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	prof, err := h.service.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		logger.Error("get own profile failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// ListProfiles handles GET /api/profile
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.service.ListProfiles(c.Request.Context())
	if err != nil {
		logger.Error("list profiles failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfileByUserID handles GET /api/profile/user/:user_id.
// A malformed id gets the same response as an unknown one.
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Profile not found")
		return
	}

	prof, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "Profile not found")
			return
		}
		logger.Error("get profile by user id failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// UpsertProfile handles POST /api/profile
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req profile.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, response.FromValidationErrors(err))
		return
	}

	prof, err := h.service.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("upsert profile failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// DeleteAccount handles DELETE /api/profile
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), userID); err != nil {
		logger.Error("delete account failed", err)
		response.ServerError(c)
		return
	}

	response.Msg(c, http.StatusOK, "User deleted")
}

// AddExperience handles PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req profile.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, response.FromValidationErrors(err))
		return
	}

	prof, err := h.service.AddExperience(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		logger.Error("add experience failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	prof, err := h.service.RemoveExperience(c.Request.Context(), userID, c.Param("exp_id"))
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		logger.Error("remove experience failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// AddEducation handles PUT /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req profile.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, response.FromValidationErrors(err))
		return
	}

	prof, err := h.service.AddEducation(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		logger.Error("add education failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	prof, err := h.service.RemoveEducation(c.Request.Context(), userID, c.Param("edu_id"))
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		logger.Error("remove education failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, prof)
}

// GetGithubRepos handles GET /api/profile/github/:username.
// The upstream body is forwarded verbatim on success.
func (h *ProfileHandler) GetGithubRepos(c *gin.Context) {
	body, err := h.service.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, github.ErrNoProfile):
			response.Msg(c, http.StatusNotFound, "No github profile found")
		case errors.Is(err, github.ErrUnavailable):
			logger.Error("github lookup transport failure", err)
			response.Msg(c, http.StatusBadGateway, "Server Error")
		default:
			logger.Error("github lookup failed", err)
			response.ServerError(c)
		}
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
