package clients

import "time"

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
	USER_AGENT      = "tubepulse-client/1.0 (+https://github.com/spacesedan/tubepulse)"

	// DEFAULT_CACHE_TTL bounds how long a cached analysis may serve before a
	// fresh fetch; comment sections move fast on active videos.
	DEFAULT_CACHE_TTL = 10 * time.Minute
)
