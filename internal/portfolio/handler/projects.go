package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio-api/internal/portfolio"
	"github.com/devfolio/devfolio-api/internal/portfolio/service"
)

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
	Tags        []string `json:"tags"`
}

func (req *projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Tags:        req.Tags,
	}
}

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.svc.Projects(c.Request.Context(), c.Query("search"))
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
	c.JSON(http.StatusOK, gin.H{"projects": slice, "total": total, "page": page, "totalPages": totalPages})
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.CreateProject(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": p})
}

func (h *Handler) updateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.UpdateProject(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted"})
}
