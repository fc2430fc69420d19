package service

import (
	"time"

	"Sentiscope/internal/analytics"
	"Sentiscope/internal/api/dto"
	"Sentiscope/internal/dataset"
	"Sentiscope/internal/model"

	"github.com/jinzhu/copier"
)

// dateOption 把 time.Time 以 YYYY-MM-DD 写入字符串字段
var dateOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).Format(time.DateOnly), nil
			},
		},
	},
}

func toLabelCountsDTO(c analytics.LabelCounts) dto.LabelCountsDTO {
	return dto.LabelCountsDTO{
		Positive: c[model.SentimentPositive],
		Negative: c[model.SentimentNegative],
		Neutral:  c[model.SentimentNeutral],
	}
}

func toPostDTO(p model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.CopyWithOption(out, &p, dateOption)
	return out
}

func toCommentDTOs(comments []model.Comment) []*dto.CommentDTO {
	out := make([]*dto.CommentDTO, 0, len(comments))
	for i := range comments {
		item := &dto.CommentDTO{}
		_ = copier.CopyWithOption(item, &comments[i], dateOption)
		out = append(out, item)
	}
	return out
}

func toPostDetailDTO(d analytics.PostDetail) *dto.PostDetailDTO {
	return &dto.PostDetailDTO{
		Post:      toPostDTO(d.Post),
		Comments:  toCommentDTOs(d.Comments),
		Sentiment: toLabelCountsDTO(d.Sentiment),
	}
}

func toSnapshotDTOs(snapshots []*model.SentimentSnapshot) []*dto.SnapshotDTO {
	out := make([]*dto.SnapshotDTO, 0, len(snapshots))
	for _, s := range snapshots {
		item := &dto.SnapshotDTO{}
		_ = copier.Copy(item, s)
		out = append(out, item)
	}
	return out
}

func toWarningDTOs(warnings []model.IntegrityWarning) []*dto.IntegrityWarningDTO {
	out := make([]*dto.IntegrityWarningDTO, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, &dto.IntegrityWarningDTO{
			Kind:      w.Kind,
			CommentID: w.CommentID,
			PostID:    w.PostID,
			Message:   w.Message,
		})
	}
	return out
}

func newSnapshot(ds *model.Dataset) *model.SentimentSnapshot {
	dist := analytics.SentimentDistribution(ds.Comments)
	return &model.SentimentSnapshot{
		Fingerprint:     ds.Fingerprint,
		LoadedAt:        ds.LoadedAt,
		TotalPosts:      len(ds.Posts),
		TotalComments:   len(ds.Comments),
		PositiveCount:   dist[model.SentimentPositive],
		NegativeCount:   dist[model.SentimentNegative],
		NeutralCount:    dist[model.SentimentNeutral],
		PercentPositive: analytics.Percent(dist[model.SentimentPositive], len(ds.Comments)),
		OrphanComments:  dataset.CountWarnings(ds.Warnings, model.WarningOrphanComment),
	}
}
