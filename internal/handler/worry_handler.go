package handler

import (
	"net/http"
	"strconv"

	"condo-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type WorryHandler struct {
	svc *service.WorryService
}

func NewWorryHandler(svc *service.WorryService) *WorryHandler {
	return &WorryHandler{svc: svc}
}

func (h *WorryHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	in := service.WorryInput{
		Title:   strField(raw, "title"),
		Content: strField(raw, "content"),
	}
	if err := h.svc.Create(c.Request.Context(), callerID(c), in); err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *WorryHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), callerID(c), id); err != nil {
		abortRaw(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *WorryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	rows, total := h.svc.List(callerID(c), page, size, c.Query("sort"))
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total_count": total})
}
