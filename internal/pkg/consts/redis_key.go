package consts

import "time"

const (
	// DashboardViewKey 视图缓存前缀，后接数据集指纹与视图名
	DashboardViewKey = "dashboard:view:"
	// CriticalAlertKey 已推送的负面评论告警，后接 comment_id
	CriticalAlertKey = "alert:critical:"
)

// CriticalAlertTTL 告警去重记录的保留时间
const CriticalAlertTTL = 7 * 24 * time.Hour

// DashboardViewCacheKey dashboard:view:<fingerprint>:<view>
func DashboardViewCacheKey(fingerprint, view string) string {
	return DashboardViewKey + fingerprint + ":" + view
}
