package domain

import "time"

const MaxVerificationAttempts = 5

// PendingVerification is an OTP challenge awaiting confirmation. Only the
// bcrypt hash of the code is kept.
type PendingVerification struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CodeHash  string    `json:"code_hash"`
	CreatedAt time.Time `json:"created_at"`
}
