package service

import (
	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
)

// DefaultSettings 运行时设置的默认值，顺序即管理后台展示顺序。
var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Blog Platform", Desc: "网站名称", Category: "常规"},
	{Key: consts.ConfigSiteDescription, Value: "A place to share stories", Desc: "网站描述", Category: "常规"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)", Category: "安全"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "安全"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "认证接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "上传接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigRateLimitWriteRPS, Value: "2.0", Desc: "评论、点赞接口每秒请求限制 (RPS)", Category: "安全"},
	{Key: consts.ConfigRateLimitWriteBurst, Value: "10", Desc: "评论、点赞接口突发请求限制", Category: "安全"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "普通接口最大请求体限制 (MB)", Category: "上传"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Desc: "含图片接口最大请求体限制 (MB)", Category: "上传"},
	{Key: consts.ConfigTrustedProxies, Value: "", Desc: "可信反向代理 IP/CIDR 列表（逗号分隔，修改后重启生效）", Category: "安全"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)", Category: "上传"},
}
