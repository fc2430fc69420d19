package analytics

import (
	"time"

	"Sentiscope/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func comment(id, postID int64, platform model.Platform, label model.SentimentLabel, likes int, text string) model.Comment {
	return model.Comment{
		CommentID:      id,
		PostID:         postID,
		Platform:       platform,
		CommentText:    text,
		Likes:          likes,
		SentimentLabel: label,
	}
}

func fixtureDataset() *model.Dataset {
	posts := []model.Post{
		{PostID: 1, Platform: model.PlatformLinkedIn, PostText: "Cloud-Native Compliance Framework Whitepaper", PostType: "whitepaper", Likes: 100, Shares: 10, Comments: 4, Date: day(5)},
		{PostID: 2, Platform: model.PlatformTwitter, PostText: "Urgent: Zero-Day mitigation strategy for Azure", PostType: "alert", Likes: 50, Shares: 20, Comments: 2, Date: day(1)},
		{PostID: 3, Platform: model.PlatformFacebook, PostText: "Live Session: SOC2 Compliance Best Practices", PostType: "webinar", Likes: 30, Shares: 3, Comments: 0, Date: day(5)},
	}
	comments := []model.Comment{
		comment(1, 1, model.PlatformLinkedIn, model.SentimentNegative, 50, "API compatibility issues in v3.0"),
		comment(2, 1, model.PlatformLinkedIn, model.SentimentNegative, 90, "SLA breach during migration"),
		comment(3, 1, model.PlatformLinkedIn, model.SentimentPositive, 12, "AI integration works flawlessly"),
		comment(4, 2, model.PlatformTwitter, model.SentimentNeutral, 7, "Pricing for enterprises?"),
		comment(5, 2, model.PlatformTwitter, model.SentimentNegative, 90, "Support ticket #1234 still unresolved"),
		comment(6, 999, model.PlatformFacebook, model.SentimentNegative, 40, "Cloud outage, terrible"),
	}
	return model.NewDataset(posts, comments, nil, "fp", day(10))
}
