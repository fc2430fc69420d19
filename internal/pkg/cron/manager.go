package cron

import (
	log "log/slog"

	"Sentiscope/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	reloadSpec       string
	datasetReloadJob *job.DatasetReloadJob
}

func NewCronManager(reloadSpec string, datasetReloadJob *job.DatasetReloadJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		reloadSpec:       reloadSpec,
		datasetReloadJob: datasetReloadJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.reloadSpec, s.datasetReloadJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "reload_spec", s.reloadSpec)
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
