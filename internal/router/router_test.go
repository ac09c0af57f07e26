package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Community{},
		&model.User{},
		&model.Notice{},
		&model.Meeting{},
		&model.Worry{},
		&model.NoticeLike{},
		&model.WorryLike{},
	))

	mr := miniredis.RunT(t)
	require.NoError(t, redis.Init(mr.Addr(), "", 0))
	t.Cleanup(func() { _ = redis.Close() })

	return InitRouter(Deps{DB: db, Log: zap.NewNop()}), db
}

func seedApproved(t *testing.T, db *gorm.DB, role, email, password string) *model.User {
	t.Helper()
	c := &model.Community{Name: "Elm 12", AddressRef: "elm-12-" + email}
	require.NoError(t, db.Create(c).Error)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Seeded",
		Role:         role,
		Status:       model.StatusApproved,
		CommunityID:  &c.ID,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/user/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterLoginFlow(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/user/register", "", gin.H{
		"email":       "new@example.com",
		"password":    "longenough",
		"name":        "New Resident",
		"address_ref": "elm-99",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var u model.User
	require.NoError(t, db.First(&u, "email = ?", "new@example.com").Error)
	assert.Equal(t, model.StatusPending, u.Status)

	// short password rejected by binding
	w = doJSON(r, http.MethodPost, "/api/user/register", "", gin.H{
		"email":       "short@example.com",
		"password":    "short",
		"name":        "X",
		"address_ref": "elm-99",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoticeEndpoints(t *testing.T) {
	r, db := newTestRouter(t)
	seedApproved(t, db, model.RoleAdmin, "admin@example.com", "adminpass")
	token := login(t, r, "admin@example.com", "adminpass")

	t.Run("requires a token", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/notice/list", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("create and list", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/notice/create", token, gin.H{
			"title":    "Pool closed",
			"content":  "Maintenance on Monday.",
			"category": "Maintenance",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(r, http.MethodGet, "/api/notice/list", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Rows       []map[string]any `json:"rows"`
			TotalCount int64            `json:"total_count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.EqualValues(t, 1, resp.TotalCount)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "Pool closed", resp.Rows[0]["title"])
	})

	t.Run("field error surfaces as a tag", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/notice/create", token, gin.H{
			"content":  "no title",
			"category": "General",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(pkg.TagInvalidTitle), resp["error"])
	})

	t.Run("resident gets forbidden", func(t *testing.T) {
		seedApproved(t, db, model.RoleResident, "res@example.com", "residentpass")
		resToken := login(t, r, "res@example.com", "residentpass")
		w := doJSON(r, http.MethodPost, "/api/notice/create", resToken, gin.H{
			"title":    "t",
			"content":  "c",
			"category": "General",
		})
		require.Equal(t, http.StatusForbidden, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(pkg.TagForbidden), resp["error"])
	})
}

func TestLikeEndpoints(t *testing.T) {
	r, db := newTestRouter(t)
	seedApproved(t, db, model.RoleAdmin, "admin@example.com", "adminpass")
	token := login(t, r, "admin@example.com", "adminpass")

	w := doJSON(r, http.MethodPost, "/api/notice/create", token, gin.H{
		"title":    "Likeable",
		"content":  "body",
		"category": "General",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var n model.Notice
	require.NoError(t, db.First(&n).Error)

	path := fmt.Sprintf("/api/like/notice/%d/toggle", n.ID)
	w = doJSON(r, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.EqualValues(t, 1, resp.LikesCount)

	w = doJSON(r, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
	assert.EqualValues(t, 0, resp.LikesCount)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r, db := newTestRouter(t)
	seedApproved(t, db, model.RoleAdmin, "admin@example.com", "adminpass")
	token := login(t, r, "admin@example.com", "adminpass")

	w := doJSON(r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/notice/list", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
