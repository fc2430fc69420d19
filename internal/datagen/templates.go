package datagen

import (
	"fmt"
	"math/rand/v2"

	"Sentiscope/internal/model"
)

const (
	PostTypeWhitepaper    = "whitepaper"
	PostTypeCaseStudy     = "case_study"
	PostTypeAlert         = "alert"
	PostTypeWebinar       = "webinar"
	PostTypeProductUpdate = "product_update"
)

var (
	techTerms = []string{"Kubernetes", "LLM", "SIEM", "IaC", "Zero Trust"}
	roles     = []string{"CTO", "CIO", "Security Engineer", "Cloud Architect"}
	companies = []string{"Northwind", "Globex", "Initech", "Umbrella Systems", "Stark Analytics", "Acme Cloud", "Hooli", "Wayne Logistics"}
	handles   = []string{"alex", "sam", "jordan", "taylor", "morgan", "casey", "riley", "devon", "quinn", "avery"}
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func pick(r *rand.Rand, items ...string) string {
	return items[r.IntN(len(items))]
}

// between 返回 [lo, hi) 内的随机整数
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}

// PostText 按帖子类型生成正文，相同 seed 结果相同
func PostText(postType string, seed int64) string {
	return postText(newRand(seed), postType)
}

// CommentText 按情感类别生成评论，相同 seed 结果相同
func CommentText(category model.SentimentLabel, seed int64) string {
	return commentText(newRand(seed), category)
}

func postText(r *rand.Rand, postType string) string {
	switch postType {
	case PostTypeWhitepaper:
		return fmt.Sprintf("%s %s Whitepaper",
			pick(r, "AI-Driven", "Cloud-Native"),
			pick(r, "Digital Transformation", "Compliance Framework"))
	case PostTypeCaseStudy:
		return fmt.Sprintf("Case Study: %s achieved %d%% %s",
			pick(r, companies...),
			between(r, 40, 95),
			pick(r, "cost reduction", "fraud prevention", "API latency improvement"))
	case PostTypeAlert:
		return fmt.Sprintf("Urgent: %s mitigation strategy for %s",
			pick(r, "Zero-Day", "DDoS"),
			pick(r, "Azure", "AWS", "Hybrid Clouds"))
	case PostTypeWebinar:
		return fmt.Sprintf("Live Session: %s Best Practices",
			pick(r, "Generative AI Governance", "SOC2 Compliance"))
	case PostTypeProductUpdate:
		return fmt.Sprintf("New Release: %s introduces %s",
			pick(r, "v3.2", "v4.0"),
			pick(r, "real-time threat detection", "multi-cloud cost analytics"))
	default:
		return "Update: " + postType
	}
}

func commentText(r *rand.Rand, category model.SentimentLabel) string {
	switch category {
	case model.SentimentPositive:
		switch r.IntN(3) {
		case 0:
			return fmt.Sprintf("Deployed this across our %d locations!", between(r, 10, 50))
		case 1:
			return pick(r, techTerms...) + " integration works flawlessly"
		default:
			return fmt.Sprintf("Our %s loved the compliance features", pick(r, "auditors", "board"))
		}
	case model.SentimentNegative:
		switch r.IntN(3) {
		case 0:
			return fmt.Sprintf("%s compatibility issues in v%s", pick(r, techTerms...), pick(r, "2.1", "3.0"))
		case 1:
			return "SLA breach during " + pick(r, "migration", "pen test")
		default:
			return fmt.Sprintf("Support ticket #%d still unresolved", between(r, 1000, 10000))
		}
	default:
		switch r.IntN(3) {
		case 0:
			return fmt.Sprintf("Pricing for %s?", pick(r, "non-profits", "enterprises"))
		case 1:
			return "Terraform provider available?"
		default:
			return fmt.Sprintf("Roadmap for %s certification?", pick(r, "FedRAMP", "GDPR"))
		}
	}
}

func userHandle(r *rand.Rand) string {
	return fmt.Sprintf("@%s%d_%s", pick(r, handles...), r.IntN(100), pick(r, roles...))
}
