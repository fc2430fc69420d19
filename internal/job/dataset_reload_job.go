package job

import (
	"context"
	log "log/slog"
	"time"

	"Sentiscope/internal/pkg/logger"
	"Sentiscope/internal/service"
)

const reloadTimeout = 2 * time.Minute

type DatasetReloadJob struct {
	datasetSvc service.DatasetService
}

func NewDatasetReloadJob(datasetSvc service.DatasetService) *DatasetReloadJob {
	return &DatasetReloadJob{
		datasetSvc: datasetSvc,
	}
}

// Run 检查数据源是否变化，变化时重新评分并替换当前数据集
func (s *DatasetReloadJob) Run() {
	ctx, cancel := context.WithTimeout(logger.NewJobContext("dataset-reload"), reloadTimeout)
	defer cancel()

	status, err := s.datasetSvc.Refresh(ctx)
	if err != nil {
		log.ErrorContext(ctx, "dataset refresh error", "err", err)
		return
	}

	log.InfoContext(ctx, "DatasetReloadJob finished",
		"fingerprint", status.Fingerprint,
		"posts", status.Posts,
		"comments", status.Comments,
		"warnings", len(status.Warnings),
	)
}
