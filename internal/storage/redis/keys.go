package redis

import "fmt"

// Key prefix for all leaderboard data
const keyPrefix = "fb"

// userKey returns the Redis key for a User
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// scoresKey returns the Redis key for the best-score sorted set.
// Members are usernames, scores are best scores.
func scoresKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}
