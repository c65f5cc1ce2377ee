package httpx

import (
	"strconv"

	"blog-platform-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// Page 规范化后的分页参数。
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NormalizePage page<1 视为 1，limit<1 视为默认值，limit 上限为 100。
func NormalizePage(page, limit int) Page {
	if page < 1 {
		page = consts.DefaultPage
	}
	if limit < 1 {
		limit = consts.DefaultPageSize
	}
	if limit > consts.MaxPageSize {
		limit = consts.MaxPageSize
	}
	return Page{Page: page, Limit: limit}
}

// ParsePage 从查询参数 page/limit 读取分页，非法值按默认处理。
func ParsePage(c *gin.Context) Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return NormalizePage(page, limit)
}

func BuildPagination(page Page, total int64) Pagination {
	totalPages := 0
	if page.Limit > 0 {
		totalPages = int((total + int64(page.Limit) - 1) / int64(page.Limit))
	}
	return Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
		HasNext:    page.Page < totalPages,
		HasPrev:    page.Page > 1,
	}
}
