package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"sambatin/internal/models"
	"sambatin/internal/utils"
)

// 匿名内容全部过一遍严格白名单，HTML 一律剥掉
var sanitizePolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(s))
}

// JSONError 统一错误响应
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// sambatView decorates a sambat with the lifecycle strings the wall
// renders next to each card.
type sambatView struct {
	models.Sambat
	TimeAgo        string  `json:"time_ago"`
	Countdown      *string `json:"countdown,omitempty"`
	IsExpiringSoon bool    `json:"is_expiring_soon"`
}

func newSambatView(s models.Sambat) sambatView {
	view := sambatView{
		Sambat:         s,
		TimeAgo:        utils.TimeAgo(s.CreatedAt),
		IsExpiringSoon: utils.IsExpiringSoon(s.ExpiresAt),
	}
	if s.ExpiresAt != nil {
		countdown := utils.Countdown(*s.ExpiresAt)
		view.Countdown = &countdown
	}
	return view
}

func newSambatViews(sambats []models.Sambat) []sambatView {
	views := make([]sambatView, len(sambats))
	for i, s := range sambats {
		views[i] = newSambatView(s)
	}
	return views
}
