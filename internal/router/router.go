package router

import (
	"net/http"
	"time"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/logger"
	"blog-platform-server/internal/middleware"
	"blog-platform-server/internal/modules"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// uploadRoutes 请求体可能包含图片的路由，使用上传体积上限而非普通上限。
var uploadRoutes = map[string]bool{
	http.MethodPost + " /api/auth/avatar":  true,
	http.MethodPost + " /api/blogs":        true,
	http.MethodPut + " /api/blogs/:id":     true,
	http.MethodPost + " /api/blogs/upload": true,
}

type Router struct {
	modules     *modules.AppModules
	service     *service.AppService
	sessions    *session.Manager
	statusCache *session.StatusCache
	limiter     *middleware.RateLimiter
	db          *gorm.DB
	cfg         *config.Config
}

func NewRouter(
	appModules *modules.AppModules,
	appService *service.AppService,
	sessions *session.Manager,
	statusCache *session.StatusCache,
	limiter *middleware.RateLimiter,
	gormDB *gorm.DB,
	cfg *config.Config,
) *Router {
	return &Router{
		modules:     appModules,
		service:     appService,
		sessions:    sessions,
		statusCache: statusCache,
		limiter:     limiter,
		db:          gormDB,
		cfg:         cfg,
	}
}

// routeChains 各路由组共用的中间件链。
type routeChains struct {
	requireAuth  []gin.HandlerFunc
	optionalAuth gin.HandlerFunc
	upload       gin.HandlerFunc
	authLimiter  gin.HandlerFunc
	writeLimiter gin.HandlerFunc
	uploadLimit  gin.HandlerFunc
}

func (rt *Router) Init(r *gin.Engine) {
	registerValidators()

	r.Use(logger.GinLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders(imageSources(rt.cfg.ImageHost)...))
	if corsMiddleware, ok := newCORS(rt.cfg.Server.CORSOrigins); ok {
		r.Use(corsMiddleware)
	}

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware(rt.service, isUploadRoute))

	cookieName := rt.cfg.JWT.CookieName
	chains := routeChains{
		requireAuth: []gin.HandlerFunc{
			middleware.JWTAuth(rt.sessions, cookieName),
			middleware.UserStatusCheck(rt.statusCache, rt.modules.User.Service),
		},
		optionalAuth: middleware.OptionalAuth(rt.sessions, cookieName),
		upload:       middleware.UploadBodyLimitMiddleware(rt.service),
		authLimiter:  rt.limiter.Middleware(consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst),
		writeLimiter: rt.limiter.Middleware(consts.ConfigRateLimitWriteRPS, consts.ConfigRateLimitWriteBurst),
		uploadLimit:  rt.limiter.Middleware(consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst),
	}

	registerPublicRoutes(api, rt.db, rt.modules.Settings.Handler)
	registerAuthRoutes(api, chains, rt.modules.Auth.Handler)
	registerBlogRoutes(api, chains, rt.modules.Blog.Handler, rt.modules.Media.Handler)
	registerAdminRoutes(api, chains, rt.modules)
}

// imageSources 封面与头像可能直接引用外部 https 地址，MinIO 的公开地址也可能是 http。
func imageSources(cfg config.ImageHostConfig) []string {
	sources := []string{"https:"}
	if cfg.Provider == "minio" && cfg.MinIO.PublicURL != "" {
		sources = append(sources, cfg.MinIO.PublicURL)
	}
	return sources
}

func isUploadRoute(c *gin.Context) bool {
	return uploadRoutes[c.Request.Method+" "+c.FullPath()]
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := utils.RegisterCustomValidations(v); err != nil {
		log.Error().Err(err).Msg("❌ 注册自定义校验规则失败")
	}
}

// newCORS 允许配置中的前端来源携带 Cookie 访问接口，未配置来源时不启用。
func newCORS(origins []string) (gin.HandlerFunc, bool) {
	if len(origins) == 0 {
		return nil, false
	}

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders:    []string{logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			// 通配来源时回显请求来源，否则浏览器会拒绝携带凭证的响应
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cors.New(cfg), true
		}
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg), true
}
