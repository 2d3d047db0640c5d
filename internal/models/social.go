package models

import "time"

// FeedLimit caps how many posts the feed returns, newest first.
const FeedLimit = 20

// SocialPost is an append-only feed entry. Posts are never edited or
// deleted.
type SocialPost struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	MediaRef  string    `json:"media_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
