package router

import (
	"condo-portal/internal/handler"
	"condo-portal/internal/middleware"
	"condo-portal/internal/pkg"
	"condo-portal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Producer *pkg.KafkaProducer // nil disables invalidation signals
	Mail     pkg.SMTPConfig     // empty host disables moderation mail
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	tenant := service.NewTenantResolver(d.DB)
	invalidate := service.NewListInvalidator(d.Producer, d.Log)

	auth := handler.NewAuthHandler(service.NewAuthService(d.DB))
	notice := handler.NewNoticeHandler(service.NewNoticeService(d.DB, tenant, invalidate, d.Log))
	meeting := handler.NewMeetingHandler(service.NewMeetingService(d.DB, tenant, invalidate, d.Log))
	worry := handler.NewWorryHandler(service.NewWorryService(d.DB, tenant, invalidate, d.Log))
	resident := handler.NewResidentHandler(service.NewResidentService(d.DB, tenant, invalidate, d.Mail, d.Log))
	like := handler.NewLikeHandler(service.NewLikeService(d.DB, d.Log))

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", auth.Register)
		userGroup.POST("/login", auth.Login)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", auth.TokenRefresh)
	}

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", auth.Logout)
	}

	noticeGroup := r.Group("/api/notice")
	noticeGroup.Use(middleware.AuthMiddleware())
	{
		noticeGroup.POST("/create", notice.Create)
		noticeGroup.PUT("/:id", notice.Update)
		noticeGroup.DELETE("/:id", notice.Delete)
		noticeGroup.GET("/list", notice.List)
		noticeGroup.GET("/admin/list", notice.AdminList)
	}

	meetingGroup := r.Group("/api/meeting")
	meetingGroup.Use(middleware.AuthMiddleware())
	{
		meetingGroup.POST("/create", meeting.Create)
		meetingGroup.PUT("/:id", meeting.Update)
		meetingGroup.DELETE("/:id", meeting.Delete)
		meetingGroup.GET("/list", meeting.List)
	}

	worryGroup := r.Group("/api/worry")
	worryGroup.Use(middleware.AuthMiddleware())
	{
		worryGroup.POST("/create", worry.Create)
		worryGroup.DELETE("/:id", worry.Delete)
		worryGroup.GET("/list", worry.List)
	}

	residentGroup := r.Group("/api/resident")
	residentGroup.Use(middleware.AuthMiddleware())
	{
		residentGroup.GET("/list", resident.List)
		residentGroup.POST("/:id/approve", resident.Approve)
		residentGroup.POST("/:id/reject", resident.Reject)
		residentGroup.DELETE("/:id", resident.Remove)
	}

	likeGroup := r.Group("/api/like")
	likeGroup.Use(middleware.AuthMiddleware())
	{
		likeGroup.POST("/notice/:id/toggle", like.ToggleNotice)
		likeGroup.GET("/notice/:id/count", like.NoticeCount)
		likeGroup.POST("/worry/:id/toggle", like.ToggleWorry)
		likeGroup.GET("/worry/:id/count", like.WorryCount)
	}

	return r
}
