package constants

import "time"

// Context and session keys
const (
	ContextKeyAccountID = "account_id"
	ContextKeyIDToken   = "id_token"
	ContextKeyLocation  = "location"

	SessionCookieName = "__session"
	SessionKeyIDToken = "id_token"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Field bounds
const (
	MaxContainerNameLength = 100
	MaxTaskNameLength      = 500
	MaxDescriptionLength   = 5000
	MaxTagNameLength       = 50
)

// Task suggestions
const (
	MaxSuggestedTasks   = 20
	MaxSuggestionInput  = 10000
	SuggestionStaleness = 24 * time.Hour
)

// Billing
const (
	BillingAccessPath     = "/api/billing/tasks/access"
	DefaultBillingTimeout = 5 * time.Second
)

const TimezoneHeader = "X-Timezone"
