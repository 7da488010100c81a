package model

// Source tells which allowance admitted an attempt.
type Source string

const (
	SourceFree Source = "FREE"
	SourcePaid Source = "PAID"
	SourceNone Source = "NONE"
)

// Entitlement stores the usage allowance for a Telegram user.
// FreeUsed only moves false->true; PaidRemaining never goes negative.
type Entitlement struct {
	UserID        int64 `json:"user_id"`
	FreeUsed      bool  `json:"free_used"`
	PaidRemaining int   `json:"paid_remaining"`
}
