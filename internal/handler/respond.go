package handler

import (
	"net/http"

	"condo-portal/internal/middleware"
	"condo-portal/internal/pkg"

	"github.com/gin-gonic/gin"
)

// callerID pulls the authenticated user id injected by the auth middleware.
// 0 means no caller.
func callerID(c *gin.Context) uint64 {
	v, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0
	}
	id, ok := v.(uint64)
	if !ok {
		return 0
	}
	return id
}

// strField reads one string field out of the raw form payload. nil means the
// key was absent or held a non-string value; the services turn that into the
// field's ERROR_INVALID_* tag.
func strField(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// abortTagged responds with the error's tag, normalizing anything untagged
// to ERROR_UNKNOWN. Used by create/moderation paths.
func abortTagged(c *gin.Context, err error) {
	tag := pkg.Normalize(err)
	c.JSON(statusFor(tag), gin.H{"error": tag.Error()})
}

// abortRaw responds with the tag when there is one and the raw message
// otherwise. Update/delete paths propagate storage messages verbatim.
func abortRaw(c *gin.Context, err error) {
	if pkg.IsTag(err) {
		tag := pkg.Normalize(err)
		c.JSON(statusFor(tag), gin.H{"error": tag.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func statusFor(tag pkg.Tag) int {
	switch tag {
	case pkg.TagUnauthorized, pkg.TagUnauthorizedUser, pkg.TagUnauthorizedCommunity:
		return http.StatusUnauthorized
	case pkg.TagForbidden:
		return http.StatusForbidden
	case pkg.TagDBInsertFailed, pkg.TagInsertFailed, pkg.TagFetchingProfile, pkg.TagUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
