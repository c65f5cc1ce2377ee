package dto

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// WebInfoResponse 前台公开的站点信息。
type WebInfoResponse struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	AllowRegister   bool   `json:"allowRegister"`
}
