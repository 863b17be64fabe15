package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio-api/internal/portfolio"
	"github.com/devfolio/devfolio-api/internal/portfolio/service"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userPatchRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,role"`
}

func (h *Handler) listUsers(c *gin.Context) {
	items, err := h.svc.Users(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	page, limit, paged := pageParams(c)
	if !paged {
		c.JSON(http.StatusOK, items)
		return
	}
	slice, total, totalPages := portfolio.Paginate(items, page, limit)
	c.JSON(http.StatusOK, gin.H{"users": slice, "total": total, "page": page, "totalPages": totalPages})
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": u})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

func (h *Handler) updateUser(c *gin.Context) {
	var req userPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.UpdateUser(c.Request.Context(), c.Param("id"), service.UserPatch{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user deleted"})
}
