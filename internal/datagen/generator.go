package datagen

import (
	"math/rand/v2"
	"time"

	"Sentiscope/internal/model"
)

// weighted 按权重抽取的候选集
type weighted[T any] struct {
	items   []T
	weights []int
	total   int
}

func newWeighted[T any](items []T, weights []int) weighted[T] {
	total := 0
	for _, w := range weights {
		total += w
	}
	return weighted[T]{items: items, weights: weights, total: total}
}

func (w weighted[T]) draw(r *rand.Rand) T {
	n := r.IntN(w.total)
	for i, weight := range w.weights {
		if n < weight {
			return w.items[i]
		}
		n -= weight
	}
	return w.items[len(w.items)-1]
}

var (
	platformMix = newWeighted(
		[]model.Platform{model.PlatformLinkedIn, model.PlatformTwitter, model.PlatformFacebook},
		[]int{250, 150, 100},
	)
	postTypeMix = newWeighted(
		[]string{PostTypeWhitepaper, PostTypeCaseStudy, PostTypeAlert, PostTypeWebinar, PostTypeProductUpdate},
		[]int{150, 125, 100, 75, 50},
	)
	sentimentMix = newWeighted(
		[]model.SentimentLabel{model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative},
		[]int{5, 3, 2},
	)
)

// engagementRange 各平台点赞与转发的取值区间
type engagementRange struct {
	likesLo, likesHi   int
	sharesLo, sharesHi int
}

var engagementRanges = map[model.Platform]engagementRange{
	model.PlatformLinkedIn: {200, 5000, 100, 2000},
	model.PlatformTwitter:  {100, 1500, 20, 500},
	model.PlatformFacebook: {50, 1000, 10, 300},
}

type Options struct {
	Seed  int64
	Posts int
	// End 帖子日期落在 End 之前一年内
	End time.Time
}

func DefaultOptions() Options {
	return Options{
		Seed:  42,
		Posts: 500,
		End:   time.Now().UTC().Truncate(24 * time.Hour),
	}
}

// Generate 生成帖子与评论，相同 Options 结果相同
func Generate(opts Options) ([]model.Post, []model.Comment) {
	r := newRand(opts.Seed)
	end := opts.End.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(-1, 0, 0)
	days := int(end.Sub(start).Hours() / 24)

	posts := make([]model.Post, 0, opts.Posts)
	comments := make([]model.Comment, 0, opts.Posts*4)
	var commentID int64 = 1

	for i := 1; i <= opts.Posts; i++ {
		platform := platformMix.draw(r)
		postType := postTypeMix.draw(r)
		eng := engagementRanges[platform]

		post := model.Post{
			PostID:   int64(i),
			Platform: platform,
			PostText: postText(r, postType),
			PostType: postType,
			Likes:    between(r, eng.likesLo, eng.likesHi),
			Shares:   between(r, eng.sharesLo, eng.sharesHi),
			Comments: between(r, 20, 500),
			Date:     start.AddDate(0, 0, r.IntN(days+1)),
		}
		posts = append(posts, post)

		n := between(r, 3, 6)
		for j := 0; j < n; j++ {
			comments = append(comments, model.Comment{
				CommentID:   commentID,
				PostID:      post.PostID,
				Platform:    post.Platform,
				CommentText: commentText(r, sentimentMix.draw(r)),
				User:        userHandle(r),
				Likes:       between(r, 1, 100),
				Date:        post.Date.AddDate(0, 0, r.IntN(3)),
			})
			commentID++
		}
	}
	return posts, comments
}
