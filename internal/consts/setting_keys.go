package consts

const (

	// ConfigSiteName 网站名称
	ConfigSiteName = "site_name"

	// ConfigSiteDescription 网站描述
	ConfigSiteDescription = "site_description"

	// ConfigAllowRegister 是否开放注册 (true/false)
	ConfigAllowRegister = "allow_register"

	// ConfigMaxUploadSize 含图片请求的最大请求体限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 认证接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 认证接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigRateLimitWriteRPS 评论、点赞等写接口限流 RPS
	ConfigRateLimitWriteRPS = "rate_limit_write_rps"

	// ConfigRateLimitWriteBurst 评论、点赞等写接口限流 Burst
	ConfigRateLimitWriteBurst = "rate_limit_write_burst"

	// ConfigMaxRequestBodySize 普通接口最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 静态资源缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"

	// ConfigTrustedProxies 可信反向代理列表（逗号分隔的 IP/CIDR），为空时不信任任何代理
	ConfigTrustedProxies = "trusted_proxies"
)
