package consts

// 视图名，同时用作缓存键后缀
const (
	ViewSummary       = "summary"
	ViewDistribution  = "distribution"
	ViewPlatform      = "platform"
	ViewPostSentiment = "post_sentiment"
	ViewEngagement    = "engagement"
	ViewPostList      = "posts"
)

const (
	DefaultCriticalLimit = 50
	MaxCriticalLimit     = 500
	DefaultSnapshotLimit = 20
	MaxSnapshotLimit     = 200
)
