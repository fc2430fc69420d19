package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"Sentiscope/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// sqlRecorder 记录 DryRun 模式下生成的 SQL
type sqlRecorder struct {
	mu   sync.Mutex
	sqls []string
}

func (r *sqlRecorder) record(tx *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sqls = append(r.sqls, tx.Statement.SQL.String())
}

func (r *sqlRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sqls) == 0 {
		return ""
	}
	return r.sqls[len(r.sqls)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "sentiscope:sentiscope@tcp(127.0.0.1:3306)/sentiscope?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	rec := &sqlRecorder{}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", rec.record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", rec.record))
	return db, rec
}

func TestSaveSnapshotUpsertsByFingerprint(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewSentimentSnapshotRepo(db)

	err := repo.SaveSnapshot(context.Background(), &model.SentimentSnapshot{
		Fingerprint:   "abc",
		LoadedAt:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		TotalComments: 6,
	})
	require.NoError(t, err)

	sql := rec.last()
	assert.Contains(t, sql, "INSERT INTO `sentiment_snapshots`")
	assert.Contains(t, sql, "ON DUPLICATE KEY UPDATE `loaded_at`=")
	assert.NotContains(t, sql, "`total_comments`=")
}

func TestListLatestOrdering(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewSentimentSnapshotRepo(db)

	snapshots, err := repo.ListLatest(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, snapshots)

	sql := rec.last()
	assert.Contains(t, sql, "FROM `sentiment_snapshots`")
	assert.Contains(t, sql, "ORDER BY loaded_at DESC,id DESC")
	assert.Contains(t, sql, "LIMIT")
}

func TestExistsFingerprintQuery(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewSentimentSnapshotRepo(db)

	exists, err := repo.ExistsFingerprint(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, exists)

	sql := rec.last()
	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, "FROM `sentiment_snapshots`")
	assert.Contains(t, sql, "fingerprint = ?")
}
