package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devnetwork-backend/internal/domains/post"
	"devnetwork-backend/internal/shared/middleware"
	"devnetwork-backend/internal/shared/response"
	"devnetwork-backend/pkg/logger"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, response.FromValidationErrors(err))
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("create post failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("list posts failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Msg(c, http.StatusNotFound, "Post not found")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.Msg(c, http.StatusNotFound, "Post not found")
			return
		}
		logger.Error("get post failed", err)
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeletePost handles DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Msg(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.Msg(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, post.ErrNotAuthorized):
			response.Msg(c, http.StatusUnauthorized, "User not authorized")
		default:
			logger.Error("delete post failed", err)
			response.ServerError(c)
		}
		return
	}

	response.Msg(c, http.StatusOK, "Post removed")
}
