package logger

import (
	"io"
	log "log/slog"
	"net"
	"os"
	"time"

	"Sentiscope/internal/api/config"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

var accessIndex = "logstash-sentiscope"
var accessToken string

// InitLogger 安装默认 slog：stdout JSON，配置了 logstash 时额外把带 trace_id 的记录发往远端
func InitLogger(cfg config.LogstashConfig) {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout
	if cfg.Index != "" {
		accessIndex = cfg.Index
	}
	accessToken = cfg.Token

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", accessIndex),
					log.String("log_token", accessToken),
				})

			finalHandler = NewTeeHandler(hStdout, &RemoteFilterHandler{next: hRemote})
			LogWriter = io.MultiWriter(os.Stdout, conn)
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "addr", cfg.Address, "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
