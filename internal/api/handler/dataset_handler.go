package handler

import (
	"Sentiscope/internal/api/dto"
	"Sentiscope/internal/pkg/response"
	"Sentiscope/internal/service"

	"github.com/gin-gonic/gin"
)

type DatasetHandler struct {
	datasetSvc service.DatasetService
}

func NewDatasetHandler(datasetSvc service.DatasetService) *DatasetHandler {
	return &DatasetHandler{
		datasetSvc: datasetSvc,
	}
}

// GetStatus 当前数据集状态与完整性告警
func (h *DatasetHandler) GetStatus(c *gin.Context) {
	res, err := h.datasetSvc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Reload 强制重新加载数据集
func (h *DatasetHandler) Reload(c *gin.Context) {
	res, err := h.datasetSvc.Reload(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// ListSnapshots 历史快照
func (h *DatasetHandler) ListSnapshots(c *gin.Context) {
	var req dto.SnapshotQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.datasetSvc.ListSnapshots(c.Request.Context(), req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
