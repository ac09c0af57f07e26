package handler

import (
	"net/http"
	"strconv"

	"condo-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

func (h *LikeHandler) ToggleNotice(c *gin.Context) { h.toggle(c, service.LikeNotices) }
func (h *LikeHandler) ToggleWorry(c *gin.Context)  { h.toggle(c, service.LikeWorries) }

func (h *LikeHandler) NoticeCount(c *gin.Context) { h.count(c, service.LikeNotices) }
func (h *LikeHandler) WorryCount(c *gin.Context)  { h.count(c, service.LikeWorries) }

// toggle flips the caller's like on an entity and returns the new state with
// the refreshed aggregate.
func (h *LikeHandler) toggle(c *gin.Context, target service.LikeTarget) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	liked, count, err := h.svc.Toggle(c.Request.Context(), callerID(c), target, id)
	if err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes_count": count})
}

func (h *LikeHandler) count(c *gin.Context, target service.LikeTarget) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	count, err := h.svc.Count(c.Request.Context(), target, id)
	if err != nil {
		abortTagged(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes_count": count})
}
