package wire

import (
	"fmt"
	"time"

	"Sentiscope/internal/api"
	"Sentiscope/internal/api/config"
	"Sentiscope/internal/api/handler"
	"Sentiscope/internal/dataset"
	"Sentiscope/internal/job"
	"Sentiscope/internal/pkg/consts"
	"Sentiscope/internal/pkg/cron"
	"Sentiscope/internal/pkg/kafka"
	"Sentiscope/internal/pkg/llm"
	"Sentiscope/internal/pkg/minio"
	"Sentiscope/internal/pkg/redis"
	"Sentiscope/internal/repository"
	"Sentiscope/internal/sentiment"
	"Sentiscope/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router        *gin.Engine
	DB            *gorm.DB
	CronMgr       *cron.Manager
	AlertProducer *kafka.AlertProducer
	DatasetSvc    service.DatasetService
}

// BuildApplication db 为 nil 时不记录快照
func BuildApplication(cfg *config.Config, db *gorm.DB) (*ApplicationContainer, error) {
	httpClient := resty.New().SetTimeout(30 * time.Second).SetRetryCount(2)

	postsSrc, err := newSource(cfg.Dataset.Posts, httpClient)
	if err != nil {
		return nil, err
	}
	commentsSrc, err := newSource(cfg.Dataset.Comments, httpClient)
	if err != nil {
		return nil, err
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return nil, err
	}

	loader := dataset.NewLoader(postsSrc, commentsSrc, scorer, cfg.Sentiment.Thresholds(),
		dataset.WithWorkers(cfg.Dataset.Workers))

	var viewCache service.ViewCache
	if redis.Enabled() {
		viewCache = redis.NewJSONCache()
	}

	var snapshotRepo repository.SentimentSnapshotRepo
	if db != nil {
		snapshotRepo = repository.NewSentimentSnapshotRepo(db)
	}

	producer, err := kafka.NewAlertProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	var publisher service.AlertPublisher
	if producer != nil {
		publisher = producer
	}

	var datasetOpts []service.DatasetOption
	if redis.Enabled() {
		datasetOpts = append(datasetOpts, service.WithAlertGuard(redis.NewAlertGuard(consts.CriticalAlertTTL)))
	}
	datasetSvc := service.NewDatasetService(loader, viewCache, snapshotRepo, publisher, cfg.Topics.UrgentKeywords, datasetOpts...)
	dashboardSvc := service.NewDashboardService(datasetSvc, viewCache, service.DashboardOptions{
		Keywords:       cfg.Topics.Keywords,
		UrgentKeywords: cfg.Topics.UrgentKeywords,
		CacheTTL:       time.Duration(cfg.Cache.TTL) * time.Second,
	})

	handlers := &api.HandlersGroup{
		DashboardHandler: handler.NewDashboardHandler(dashboardSvc),
		DatasetHandler:   handler.NewDatasetHandler(datasetSvc),
	}

	router := api.SetupRouter(handlers)

	var cronMgr *cron.Manager
	if cfg.Cron.Enabled {
		cronMgr = cron.NewCronManager(cfg.Cron.ReloadSpec, job.NewDatasetReloadJob(datasetSvc))
	}

	return &ApplicationContainer{
		Router:        router,
		DB:            db,
		CronMgr:       cronMgr,
		AlertProducer: producer,
		DatasetSvc:    datasetSvc,
	}, nil
}

func newSource(cfg config.SourceConfig, httpClient *resty.Client) (dataset.Source, error) {
	switch cfg.Kind {
	case config.SourceKindFile, "":
		return dataset.NewFileSource(cfg.Location), nil
	case config.SourceKindHTTP:
		return dataset.NewHTTPSource(cfg.Location, httpClient), nil
	case config.SourceKindMinIO:
		if minio.Client == nil {
			return nil, fmt.Errorf("source %q requires minio to be configured", cfg.Location)
		}
		return minio.NewObjectSource(minio.Client, minio.Bucket, cfg.Location), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

func newScorer(cfg *config.Config) (sentiment.Scorer, error) {
	switch cfg.Sentiment.Scorer {
	case config.ScorerLLM:
		client, err := llm.NewClient(cfg.LLM)
		if err != nil {
			return nil, err
		}
		return llm.NewScorer(client, cfg.LLM), nil
	default:
		if cfg.Sentiment.LexiconFile == "" {
			return sentiment.NewLexicon(), nil
		}
		lexicon, err := sentiment.LoadLexicon(cfg.Sentiment.LexiconFile)
		if err != nil {
			return nil, err
		}
		return lexicon, nil
	}
}
