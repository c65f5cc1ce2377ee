package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/db"
	"blog-platform-server/internal/di"
	"blog-platform-server/internal/logger"
	"blog-platform-server/internal/middleware"
	"blog-platform-server/internal/platform/imagehost"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	configDir := flag.String("config", "config", "配置文件目录")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()
	logger.Init(cfg.Log, cfg.Server.Mode)
	gin.SetMode(cfg.Server.Mode)

	gormDB, err := db.InitDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ 数据库初始化失败")
	}
	redisClient := session.NewRedisClient(cfg.Redis)

	app, err := di.InitializeApplication(&cfg, gormDB, redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ 应用初始化失败")
	}
	if err := app.Service.InitializeSettings(); err != nil {
		log.Fatal().Err(err).Msg("❌ 初始化运行时设置失败")
	}
	if err := app.Modules.User.Service.EnsureBootstrapAdmin(cfg.Admin.Bootstrap); err != nil {
		log.Error().Err(err).Msg("❌ 引导管理员创建失败")
	}

	r := gin.New()
	applyTrustedProxies(r, app.Service)
	app.Router.Init(r)

	if err := setupStaticFiles(r, app.Service, app.ImageHost); err != nil {
		log.Fatal().Err(err).Msg("❌ 静态资源目录配置错误")
	}

	distFS := frontendFS()
	indexData, err := mountFrontend(r, distFS)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ 前端资源挂载失败")
	}
	r.NoRoute(getNoRouteHandler(distFS, indexData))

	// 导出模式：写出路由后直接退出，不启动 Web 服务
	if *exportRoutes {
		exportAPI(r)
		return
	}

	printWelcomeMessage()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("🚀 服务启动成功")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ 服务启动失败")
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("❌ 服务强制关闭")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("✅ 服务已退出")
}

// applyTrustedProxies 按运行时设置配置可信代理，影响 ClientIP 与限流。
func applyTrustedProxies(r *gin.Engine, appService *service.AppService) {
	proxies := splitTrustedProxyList(appService.GetString(consts.ConfigTrustedProxies))
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		log.Warn().Err(err).Msg("⚠️ 可信代理配置无效，已禁用代理信任")
		_ = r.SetTrustedProxies(nil)
	}
}

func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\n', '\t', '\r':
			return true
		}
		return false
	})
}

// setupStaticFiles 本地图床模式下挂载图片目录，其他模式图片由外部地址提供。
func setupStaticFiles(r *gin.Engine, appService *service.AppService, host imagehost.Host) error {
	local, ok := host.(*imagehost.Local)
	if !ok {
		return nil
	}
	if err := checkSecurePath(local.Root()); err != nil {
		return err
	}
	if err := os.MkdirAll(local.Root(), 0755); err != nil {
		return fmt.Errorf("无法创建图片目录: %w", err)
	}

	r.Group(local.URLPrefix(), middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(local.Root(), false))
	return nil
}

// mountFrontend 挂载前端打包产物，返回 SPA 回退使用的 index.html 内容。
// 未携带前端产物时不挂载任何路由。
func mountFrontend(r *gin.Engine, distFS fs.FS) ([]byte, error) {
	if distFS == nil {
		return nil, nil
	}
	indexData, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("读取前端 index.html 失败: %w", err)
	}

	assetsFS, err := fs.Sub(distFS, "assets")
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ 前端产物缺少 assets 目录")
		return indexData, nil
	}
	// 打包产物文件名带内容哈希，可以永久缓存
	r.Group("/assets", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Next()
	}).StaticFS("", http.FS(assetsFS))
	return indexData, nil
}

func getNoRouteHandler(distFS fs.FS, indexData []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || distFS == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"code":    service.ErrorCodeNotFound,
				"message": "Route not found",
			})
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		name := strings.TrimPrefix(path, "/")
		if name != "" {
			if f, err := distFS.Open(name); err == nil {
				stat, statErr := f.Stat()
				_ = f.Close()
				if statErr == nil && !stat.IsDir() {
					c.FileFromFS(name, http.FS(distFS))
					return
				}
			}
		}

		// SPA 回退：服务 index.html 内容
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
	}
}

func printWelcomeMessage() {
	frontendVersion := "未嵌入"
	if distFS := frontendFS(); distFS != nil {
		frontendVersion = "未知版本"
		if vData, err := fs.ReadFile(distFS, "version"); err == nil {
			frontendVersion = strings.TrimSpace(string(vData))
		}
	}

	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   💻  前端版本 : %s\n", frontendVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("❌ 路由序列化失败")
		return
	}
	if err := os.WriteFile("routes.json", file, 0644); err != nil {
		log.Error().Err(err).Msg("❌ 写入 routes.json 失败")
		return
	}

	log.Info().Int("count", len(exportList)).Msg("✅ 路由已成功导出到 routes.json")
}

// checkSecurePath 拒绝把项目根目录或非白名单子目录作为静态资源目录，避免暴露源代码与配置。
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// 项目目录之外的路径不做白名单限制
		return nil
	}

	allowedDirs := []string{"uploads", "public", "assets", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("静态资源目录 '%s' 必须位于项目根目录下的安全子目录中 (如 %v)", path, allowedDirs)
}
