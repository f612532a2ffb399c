package models

import (
	"time"
)

// AnonymousUser is recorded when a query arrives without a username
const AnonymousUser = "anonymous"

// QueryRecord represents one persisted analysis query
type QueryRecord struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"created_at"`
}
