package api

import (
	"Sentiscope/internal/api/middleware"
	"Sentiscope/internal/pkg/logger"
	"Sentiscope/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		apiGroup.GET("/dashboard/summary", group.DashboardHandler.GetSummary)

		sentimentGroup := apiGroup.Group("/sentiment")
		{
			sentimentGroup.GET("/distribution", group.DashboardHandler.GetSentimentDistribution)
			sentimentGroup.GET("/platform", group.DashboardHandler.GetSentimentByPlatform)
			sentimentGroup.GET("/posts", group.DashboardHandler.GetPostSentiment)
		}

		apiGroup.GET("/engagement/timeline", group.DashboardHandler.GetEngagementTimeline)

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.DashboardHandler.ListPosts)
			postGroup.GET("/lookup", group.DashboardHandler.LookupPost)
			postGroup.GET("/:post_id", group.DashboardHandler.GetPostDetail)
		}

		apiGroup.GET("/topics", group.DashboardHandler.GetTopics)
		apiGroup.GET("/critical", group.DashboardHandler.GetCriticalFeed)

		datasetGroup := apiGroup.Group("/dataset")
		{
			datasetGroup.GET("/status", group.DatasetHandler.GetStatus)
			datasetGroup.POST("/reload", group.DatasetHandler.Reload)
		}

		apiGroup.GET("/snapshots", group.DatasetHandler.ListSnapshots)
	}

	return r
}
