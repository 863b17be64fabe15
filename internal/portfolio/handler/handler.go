// Package handler wires the portfolio service to the HTTP surface.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio-api/internal/apperror"
	"github.com/devfolio/devfolio-api/internal/portfolio/service"
	"github.com/devfolio/devfolio-api/pkg/middleware"
)

// Handler holds the handler dependencies.
type Handler struct {
	svc *service.Service
}

// Register mounts all collection routes. Read endpoints for projects and
// codes are public; mutations and the user collection sit behind the admin
// gate. POST /codes is gated only when publicCodeCreate is false — the
// deployment decides. Signup and login never pass through the gate.
func Register(r *gin.Engine, svc *service.Service, gate *middleware.AdminGate, publicCodeCreate bool) {
	h := &Handler{svc: svc}

	r.GET("/projects", h.listProjects)
	r.POST("/projects", gate.Require(), h.createProject)
	r.PUT("/projects/:id", gate.Require(), h.updateProject)
	r.DELETE("/projects/:id", gate.Require(), h.deleteProject)

	r.GET("/codes", h.listCodes)
	if publicCodeCreate {
		r.POST("/codes", h.createCode)
	} else {
		r.POST("/codes", gate.Require(), h.createCode)
	}
	r.PUT("/codes/:id", gate.Require(), h.updateCode)
	r.DELETE("/codes/:id", gate.Require(), h.deleteCode)

	r.GET("/users", gate.Require(), h.listUsers)
	r.PUT("/users/:id", gate.Require(), h.updateUser)
	r.DELETE("/users/:id", gate.Require(), h.deleteUser)
	r.POST("/signup", h.signup)
	r.POST("/login", h.login)

	r.GET("/api/admin/stats", gate.Require(), h.stats)
}

// respondError maps the error taxonomy to status codes. Everything is caught
// here; nothing is retried and nothing crashes the process.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// pageParams reads page/limit from the query. paged is false when the caller
// sent neither, in which case the endpoint answers with the bare array.
func pageParams(c *gin.Context) (page, limit int, paged bool) {
	pageStr, hasPage := c.GetQuery("page")
	limitStr, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return 0, 0, false
	}
	page, _ = strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = 10
	}
	return page, limit, true
}
