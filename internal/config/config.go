package config

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// 用于管理应用配置

const (
	insecureDevJWTSecret = "blog_platform_dev_secret"
	envPrefix            = "BLOG"
)

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Redis     RedisConfig     `mapstructure:"redis"`
	ImageHost ImageHostConfig `mapstructure:"image_host"`
	Content   ContentConfig   `mapstructure:"content"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	CookieName      string `mapstructure:"cookie_name"`
	CookieSecure    bool   `mapstructure:"cookie_secure"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type ImageHostConfig struct {
	Provider     string           `mapstructure:"provider"` // disabled, local, minio
	DefaultCover string           `mapstructure:"default_cover"`
	Local        LocalImageConfig `mapstructure:"local"`
	MinIO        MinIOConfig      `mapstructure:"minio"`
}

type LocalImageConfig struct {
	Path      string `mapstructure:"path"`
	URLPrefix string `mapstructure:"url_prefix"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

// ContentConfig 控制点赞计数的并发策略。
type ContentConfig struct {
	OptimisticLocking bool `mapstructure:"optimistic_locking"`
	MaxRetries        int  `mapstructure:"max_retries"`
}

type AdminConfig struct {
	Bootstrap BootstrapAdminConfig `mapstructure:"bootstrap"`
}

// BootstrapAdminConfig 启动时确保存在的管理员账号，仅建议在开发/预发环境开启。
type BootstrapAdminConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// IsRelease 是否为生产模式
func (c Config) IsRelease() bool {
	return c.Server.Mode == "release"
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	// .env 只补充尚未设置的环境变量，不覆盖已有值
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("已加载 .env 文件")
	}

	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Info().Msg("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Warn().Msg("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatal().Err(err).Msg("❌ 读取配置文件失败")
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 BLOG_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 BLOG_SERVER_PORT
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/blog_platform.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "blog_platform")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 720)
	v.SetDefault("jwt.cookie_name", "token")
	v.SetDefault("jwt.cookie_secure", false)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "blog_platform")
	v.SetDefault("image_host.provider", "disabled")
	v.SetDefault("image_host.default_cover", "/static/default-cover.jpg")
	v.SetDefault("image_host.local.path", "uploads/images")
	v.SetDefault("image_host.local.url_prefix", "/images/")
	v.SetDefault("image_host.minio.endpoint", "127.0.0.1:9000")
	v.SetDefault("image_host.minio.access_key", "")
	v.SetDefault("image_host.minio.secret_key", "")
	v.SetDefault("image_host.minio.bucket", "blog-platform")
	v.SetDefault("image_host.minio.use_ssl", false)
	v.SetDefault("image_host.minio.public_url", "http://127.0.0.1:9000")
	v.SetDefault("content.optimistic_locking", false)
	v.SetDefault("content.max_retries", 3)
	v.SetDefault("admin.bootstrap.enabled", false)
	v.SetDefault("admin.bootstrap.email", "")
	v.SetDefault("admin.bootstrap.password", "")
	v.SetDefault("admin.bootstrap.name", "Temp Admin")
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Error().Err(err).Msg("❌ 配置解析失败")
		return
	}

	if tempConfig.IsRelease() {
		if tempConfig.JWT.Secret == "" || tempConfig.JWT.Secret == insecureDevJWTSecret {
			log.Error().Msg("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！")
		}
		tempConfig.JWT.CookieSecure = true
	} else if tempConfig.JWT.Secret == "" {
		log.Warn().Msg("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		tempConfig.JWT.Secret = insecureDevJWTSecret
	}
	if tempConfig.JWT.ExpirationHours <= 0 {
		tempConfig.JWT.ExpirationHours = 720
	}
	if tempConfig.Content.MaxRetries <= 0 {
		tempConfig.Content.MaxRetries = 3
	}

	appConfig.Store(&tempConfig)
}

func enforceJWTSecretSafety() {
	curr := Get()
	if curr.IsRelease() {
		if curr.JWT.Secret == "" || curr.JWT.Secret == insecureDevJWTSecret {
			log.Fatal().Msg("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！请设置环境变量 BLOG_JWT_SECRET 或在配置文件中指定 jwt.secret")
		}
	}
}
