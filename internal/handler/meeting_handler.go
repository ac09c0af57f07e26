package handler

import (
	"net/http"
	"strconv"

	"condo-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	svc *service.MeetingService
}

func NewMeetingHandler(svc *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{svc: svc}
}

func meetingInput(m map[string]any) service.MeetingInput {
	return service.MeetingInput{
		Title:       strField(m, "title"),
		Description: strField(m, "description"),
		Date:        strField(m, "date"),
		Time:        strField(m, "time"),
		Duration:    strField(m, "duration"),
	}
}

func (h *MeetingHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	if err := h.svc.Create(c.Request.Context(), callerID(c), meetingInput(raw)); err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MeetingHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), callerID(c), id, meetingInput(raw)); err != nil {
		abortRaw(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MeetingHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), callerID(c), id); err != nil {
		abortRaw(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *MeetingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	rows, total := h.svc.List(callerID(c), page, size)
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total_count": total})
}
