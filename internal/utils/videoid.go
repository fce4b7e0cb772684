package utils

import "regexp"

// The URL shapes a video ID can arrive in: watch links with any query-param
// order, embed and /v/ paths, shorts, live streams, youtu.be short links,
// and the bare 11-character ID itself.
var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/(?:[^/\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
	}
	bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video ID out of any supported URL
// form. Returns the empty string when nothing matches.
func ExtractVideoID(input string) string {
	if input == "" {
		return ""
	}
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	if bareVideoID.MatchString(input) {
		return input
	}
	return ""
}
