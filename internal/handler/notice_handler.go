package handler

import (
	"net/http"
	"strconv"

	"condo-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	svc *service.NoticeService
}

func NewNoticeHandler(svc *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{svc: svc}
}

func noticeInput(m map[string]any) service.NoticeInput {
	return service.NoticeInput{
		Title:    strField(m, "title"),
		Content:  strField(m, "content"),
		Category: strField(m, "category"),
	}
}

func (h *NoticeHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	if err := h.svc.Create(c.Request.Context(), callerID(c), noticeInput(raw)); err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *NoticeHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), callerID(c), id, noticeInput(raw)); err != nil {
		abortRaw(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), callerID(c), id); err != nil {
		abortRaw(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

// List is the resident-facing listing: like counts plus the caller's own
// has_liked flag.
func (h *NoticeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	rows, total := h.svc.List(callerID(c), page, size, c.Query("category"), c.Query("sort"), true)
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total_count": total})
}

// AdminList serves the management view; same aggregate, no has_liked.
func (h *NoticeHandler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	rows, total := h.svc.List(callerID(c), page, size, c.Query("category"), c.Query("sort"), false)
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total_count": total})
}
