package redisrepo

import "fmt"

const (
	PROFILE_BY_USERNAME_KEY = "profile:username:%s" // <username>
	RECENT_PROFILES_KEY     = "profiles:recent"
)

func ProfileByUsernameKey(username string) string {
	return fmt.Sprintf(PROFILE_BY_USERNAME_KEY, username)
}
