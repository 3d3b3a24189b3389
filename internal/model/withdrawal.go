package model

// WithdrawalRequest is a withdrawal_requests row keyed by column name.
type WithdrawalRequest map[string]any
