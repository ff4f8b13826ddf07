package vote

import "regexp"

// MaxTweetIDLen bounds tweet identifiers; X post IDs are snowflakes well
// under this length.
const MaxTweetIDLen = 25

var (
	tweetIDPattern = regexp.MustCompile(`^\d+$`)
	userIDPattern  = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// ValidTweetID reports whether id is a well-formed numeric post identifier.
func ValidTweetID(id string) bool {
	return id != "" && len(id) <= MaxTweetIDLen && tweetIDPattern.MatchString(id)
}

// ValidUserID reports whether id is a well-formed anonymous user token
// (32 lowercase hex characters, as generated by the extension).
func ValidUserID(id string) bool {
	return userIDPattern.MatchString(id)
}

// ToggleRequest is the body of POST /vote.
type ToggleRequest struct {
	TweetID string `json:"tweetId" validate:"required,tweetid"`
	UserID  string `json:"userId" validate:"required,userid"`
}
