package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Sentiscope/internal/model"
	"Sentiscope/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetServiceLazyLoad(t *testing.T) {
	loader, _, _ := newTestLoader()
	repo := &memSnapshotRepo{}
	svc := NewDatasetService(loader, nil, repo, nil, nil)

	ds, err := svc.Dataset(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Posts, 3)
	assert.Len(t, ds.Comments, 6)

	again, err := svc.Dataset(context.Background())
	require.NoError(t, err)
	assert.Same(t, ds, again)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, ds.Fingerprint, repo.saved[0].Fingerprint)
	assert.Equal(t, 6, repo.saved[0].TotalComments)
	assert.Equal(t, 1, repo.saved[0].OrphanComments)
}

func TestDatasetServiceStatus(t *testing.T) {
	loader, _, _ := newTestLoader()
	svc := NewDatasetService(loader, nil, nil, nil, nil)

	st, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.Posts)
	assert.Equal(t, 6, st.Comments)
	assert.Equal(t, 1, st.OrphanComments)
	assert.Equal(t, 0, st.CommentsBeforePost)
	assert.Equal(t, 0.2, st.Thresholds.Positive)
	assert.Equal(t, -0.2, st.Thresholds.Negative)
	require.Len(t, st.Warnings, 1)
	assert.Equal(t, model.WarningOrphanComment, st.Warnings[0].Kind)
	assert.Equal(t, int64(6), st.Warnings[0].CommentID)
}

func TestDatasetServiceRefreshDetectsChanges(t *testing.T) {
	loader, _, comments := newTestLoader()
	cache := newMemCache()
	repo := &memSnapshotRepo{}
	svc := NewDatasetService(loader, cache, repo, nil, nil)
	ctx := context.Background()

	first, err := svc.Refresh(ctx)
	require.NoError(t, err)
	same, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, same.Fingerprint)
	assert.Len(t, repo.saved, 1)

	comments.set(testComments + "7,3,Facebook,Great session,@g_CTO,3,2024-03-06\n")
	changed, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, changed.Fingerprint)
	assert.Equal(t, 7, changed.Comments)
	assert.Len(t, repo.saved, 2)
	assert.Equal(t, []string{"dashboard:view:" + first.Fingerprint}, cache.deleted)
}

func TestDatasetServiceMalformedKeepsPrevious(t *testing.T) {
	loader, posts, _ := newTestLoader()
	svc := NewDatasetService(loader, nil, nil, nil, nil)
	ctx := context.Background()

	good, err := svc.Dataset(ctx)
	require.NoError(t, err)

	posts.set("post_id,platform\n1,Twitter\n")
	_, err = svc.Reload(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetMalformed))
	assert.Contains(t, err.Error(), "post_text")

	ds, err := svc.Dataset(ctx)
	require.NoError(t, err)
	assert.Same(t, good, ds)
}

func TestDatasetServiceMalformedWithoutPrevious(t *testing.T) {
	loader, _, comments := newTestLoader()
	comments.set("comment_id,post_id\n1,1\n")
	svc := NewDatasetService(loader, nil, nil, nil, nil)

	_, err := svc.Dataset(context.Background())
	assert.ErrorIs(t, err, ErrDatasetMalformed)
	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, InternalServerError, code)
}

func TestDatasetServicePublishesNewUrgentComments(t *testing.T) {
	loader, _, comments := newTestLoader()
	pub := &memPublisher{}
	svc := NewDatasetService(loader, nil, nil, pub, []string{"breach", "unresolved", "outage"})
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, pub.batches, 1)
	var ids []int64
	for _, a := range pub.batches[0] {
		ids = append(ids, a.CommentID)
		assert.Equal(t, model.SentimentNegative, a.Label)
	}
	assert.ElementsMatch(t, []int64{2, 5, 6}, ids)

	// 重新加载同样的评论不会重复告警
	_, err = svc.Reload(ctx)
	require.NoError(t, err)
	assert.Len(t, pub.batches, 1)

	comments.set(testComments + "7,3,Facebook,Another breach reported and it is terrible,@g_CTO,3,2024-03-06\n")
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, pub.batches, 2)
	require.Len(t, pub.batches[1], 1)
	assert.Equal(t, int64(7), pub.batches[1][0].CommentID)
}

func TestDatasetServiceSnapshots(t *testing.T) {
	loader, _, _ := newTestLoader()
	repo := &memSnapshotRepo{}
	svc := NewDatasetService(loader, nil, repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Reload(ctx)
	require.NoError(t, err)
	snaps, err := svc.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, 6, snaps[0].TotalComments)
	assert.Equal(t, 1, snaps[0].OrphanComments)

	repo.err = errors.New("db down")
	_, err = svc.ListSnapshots(ctx, 5)
	assert.ErrorIs(t, err, UnExpectedError)

	empty, err := NewDatasetService(loader, nil, nil, nil, nil).ListSnapshots(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func alertIDs(batch []model.CriticalAlert) []int64 {
	ids := make([]int64, 0, len(batch))
	for _, a := range batch {
		ids = append(ids, a.CommentID)
	}
	return ids
}

func TestDatasetServiceRestartSkipsRecordedDataset(t *testing.T) {
	repo := &memSnapshotRepo{}
	pub := &memPublisher{}
	urgent := []string{"breach", "unresolved", "outage"}
	ctx := context.Background()

	loader, _, _ := newTestLoader()
	_, err := NewDatasetService(loader, nil, repo, pub, urgent).Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, pub.batches, 1)
	assert.ElementsMatch(t, []int64{2, 5, 6}, alertIDs(pub.batches[0]))

	// 新进程，同样的数据
	restarted, _, _ := newTestLoader()
	_, err = NewDatasetService(restarted, nil, repo, pub, urgent).Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, pub.batches, 1)
}

func TestDatasetServiceAlertGuardAcrossRestarts(t *testing.T) {
	guard := newMemAlertGuard()
	pub := &memPublisher{}
	urgent := []string{"breach", "unresolved", "outage"}
	ctx := context.Background()

	loader, _, _ := newTestLoader()
	_, err := NewDatasetService(loader, nil, nil, pub, urgent, WithAlertGuard(guard)).Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, pub.batches, 1)
	assert.ElementsMatch(t, []int64{2, 5, 6}, alertIDs(pub.batches[0]))

	// 停机期间数据有变化：只推送新出现的评论
	restarted, _, comments := newTestLoader()
	comments.set(testComments + "7,3,Facebook,Another breach reported and it is terrible,@g_CTO,3,2024-03-06\n")
	_, err = NewDatasetService(restarted, nil, nil, pub, urgent, WithAlertGuard(guard)).Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, pub.batches, 2)
	assert.Equal(t, []int64{7}, alertIDs(pub.batches[1]))
}

func TestDatasetServiceIgnoresStaleDataset(t *testing.T) {
	loader, _, _ := newTestLoader()
	cache := newMemCache()
	repo := &memSnapshotRepo{}
	svc := NewDatasetService(loader, cache, repo, nil, nil).(*datasetServiceImpl)
	ctx := context.Background()

	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	older := &model.Dataset{Fingerprint: "older", LoadedAt: base}
	newer := &model.Dataset{Fingerprint: "newer", LoadedAt: base.Add(time.Second)}

	svc.afterLoad(ctx, newer)
	svc.afterLoad(ctx, older)

	assert.Same(t, newer, svc.prev)
	assert.NotContains(t, cache.deleted, consts.DashboardViewKey+"newer")
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "newer", repo.saved[0].Fingerprint)
}
