package handler

import (
	"net/http"
	"strconv"

	"condo-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type ResidentHandler struct {
	svc *service.ResidentService
}

func NewResidentHandler(svc *service.ResidentService) *ResidentHandler {
	return &ResidentHandler{svc: svc}
}

func (h *ResidentHandler) Approve(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Approve(c.Request.Context(), callerID(c), id); err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "approved"})
}

func (h *ResidentHandler) Reject(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Reject(c.Request.Context(), callerID(c), id); err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "rejected"})
}

func (h *ResidentHandler) Remove(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Remove(c.Request.Context(), callerID(c), id); err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "removed"})
}

func (h *ResidentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	rows, total := h.svc.List(callerID(c), page, size, c.Query("status"), c.Query("sort"))
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total_count": total})
}
