package handler

import (
	"strconv"
	"strings"

	"Sentiscope/internal/api/dto"
	"Sentiscope/internal/pkg/response"
	"Sentiscope/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// GetSummary 关键指标
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	res, err := h.dashboardSvc.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetSentimentDistribution 整体情感分布
func (h *DashboardHandler) GetSentimentDistribution(c *gin.Context) {
	res, err := h.dashboardSvc.GetSentimentDistribution(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetSentimentByPlatform 按平台的情感分布
func (h *DashboardHandler) GetSentimentByPlatform(c *gin.Context) {
	res, err := h.dashboardSvc.GetSentimentByPlatform(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetPostSentiment 按帖子的情感分布
func (h *DashboardHandler) GetPostSentiment(c *gin.Context) {
	res, err := h.dashboardSvc.GetPostSentiment(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetEngagementTimeline 互动时间线
func (h *DashboardHandler) GetEngagementTimeline(c *gin.Context) {
	res, err := h.dashboardSvc.GetEngagementTimeline(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// ListPosts 帖子选择列表
func (h *DashboardHandler) ListPosts(c *gin.Context) {
	res, err := h.dashboardSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetPostDetail 帖子详情
func (h *DashboardHandler) GetPostDetail(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	res, err := h.dashboardSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// LookupPost 按正文查找帖子详情
func (h *DashboardHandler) LookupPost(c *gin.Context) {
	var req dto.PostLookupDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.dashboardSvc.GetPostDetailByText(c.Request.Context(), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetTopics 关键词统计
func (h *DashboardHandler) GetTopics(c *gin.Context) {
	var req dto.TopicsQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	var keywords []string
	if req.Keywords != "" {
		keywords = strings.Split(req.Keywords, ",")
	}
	res, err := h.dashboardSvc.GetTopics(c.Request.Context(), req.Negative, keywords)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetCriticalFeed 负面评论列表
func (h *DashboardHandler) GetCriticalFeed(c *gin.Context) {
	var req dto.CriticalQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.dashboardSvc.GetCriticalFeed(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
