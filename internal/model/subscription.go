package model

import "time"

const (
	SubscriptionTrialing   = "trialing"
	SubscriptionActive     = "active"
	SubscriptionPastDue    = "past_due"
	SubscriptionCanceled   = "canceled"
	SubscriptionIncomplete = "incomplete"
)

const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

const FreePlanID = "free"

type Subscription struct {
	ID                int64
	UserID            int64
	PlanID            string
	Status            string // trialing, active, past_due, canceled, incomplete
	BillingInterval   string // month, year
	CustomerID        *string
	ExternalID        *string
	CurrentPeriodEnd  *time.Time
	CancelAtPeriodEnd bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Entitled reports whether the subscription currently grants its plan.
func (s Subscription) Entitled() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

func IsValidSubscriptionStatus(status string) bool {
	switch status {
	case SubscriptionTrialing, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled, SubscriptionIncomplete:
		return true
	}
	return false
}

func IsValidInterval(interval string) bool {
	return interval == IntervalMonth || interval == IntervalYear
}

const (
	UsageKeywordResearch = "keyword_research"
	UsageArticle         = "article"
)

// Plan is a pricing tier from the plan catalog.
type Plan struct {
	ID           string     `yaml:"id" json:"id"`
	Name         string     `yaml:"name" json:"name"`
	Description  string     `yaml:"description" json:"description"`
	MonthlyPrice int64      `yaml:"monthly_price" json:"monthlyPrice"` // cents
	YearlyPrice  int64      `yaml:"yearly_price" json:"yearlyPrice"`   // cents
	Currency     string     `yaml:"currency" json:"currency"`
	Features     []string   `yaml:"features" json:"features"`
	Limits       PlanLimits `yaml:"limits" json:"limits"`
	Highlighted  bool       `yaml:"highlighted" json:"highlighted"`
}

// PlanLimits are monthly quotas. Zero means unlimited.
type PlanLimits struct {
	KeywordResearches int `yaml:"keyword_researches" json:"keywordResearches"`
	Articles          int `yaml:"articles" json:"articles"`
}

// Limit returns the monthly quota for a usage kind.
func (l PlanLimits) Limit(kind string) int {
	switch kind {
	case UsageKeywordResearch:
		return l.KeywordResearches
	case UsageArticle:
		return l.Articles
	}
	return 0
}
