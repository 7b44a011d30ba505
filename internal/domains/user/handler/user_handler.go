package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devnetwork-backend/internal/domains/user"
	"devnetwork-backend/internal/shared/middleware"
	"devnetwork-backend/internal/shared/response"
	"devnetwork-backend/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, response.FromValidationErrors(err))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			response.ValidationErrors(c, []response.FieldError{
				{Msg: "User already exists", Param: "email", Location: "body"},
			})
			return
		}
		logger.Error("register failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Login handles POST /api/auth
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, response.FromValidationErrors(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.ValidationErrors(c, []response.FieldError{
				{Msg: "Invalid Credentials", Param: "email", Location: "body"},
			})
			return
		}
		logger.Error("login failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMe handles GET /api/auth - returns the authenticated identity
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	usr, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Msg(c, http.StatusBadRequest, "User not found")
			return
		}
		logger.Error("get authed user failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, usr)
}
