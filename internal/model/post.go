package model

import (
	"time"
)

// Platform 帖子发布的平台
type Platform string

const (
	PlatformLinkedIn Platform = "LinkedIn"
	PlatformTwitter  Platform = "Twitter"
	PlatformFacebook Platform = "Facebook"
)

// KnownPlatforms 输入数据允许出现的平台
var KnownPlatforms = []Platform{PlatformLinkedIn, PlatformTwitter, PlatformFacebook}

// IsKnown 判断平台是否在允许范围内
func (p Platform) IsKnown() bool {
	for _, k := range KnownPlatforms {
		if p == k {
			return true
		}
	}
	return false
}

// Post 一条已发布的社交内容，加载后只读
type Post struct {
	PostID   int64     `json:"post_id"`
	Platform Platform  `json:"platform"`
	PostText string    `json:"post_text"`
	PostType string    `json:"post_type"`
	Likes    int       `json:"likes"`
	Shares   int       `json:"shares"`
	Comments int       `json:"comments"`
	Date     time.Time `json:"date"`
}
