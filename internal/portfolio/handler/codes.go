package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio-api/internal/portfolio"
	"github.com/devfolio/devfolio-api/internal/portfolio/service"
)

type codeRequest struct {
	Title string `json:"title" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (h *Handler) listCodes(c *gin.Context) {
	items, err := h.svc.Codes(c.Request.Context(), c.Query("search"))
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
	c.JSON(http.StatusOK, gin.H{"codes": slice, "total": total, "page": page, "totalPages": totalPages})
}

// createCode answers with the full mutated collection, matching the
// historical endpoint contract.
func (h *Handler) createCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	codes, err := h.svc.CreateCode(c.Request.Context(), service.CodeInput{Title: req.Title, Code: req.Code})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "codes": codes})
}

func (h *Handler) updateCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code, err := h.svc.UpdateCode(c.Request.Context(), c.Param("id"), service.CodeInput{Title: req.Title, Code: req.Code})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "code": code})
}

func (h *Handler) deleteCode(c *gin.Context) {
	if err := h.svc.DeleteCode(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "code deleted"})
}
