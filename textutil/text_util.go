package textutil

import (
	"regexp"
	"strings"
)

var reMentions = regexp.MustCompile(`@(\w+)`)

// ParseMentions returns the word-character run after every "@" in s,
// left to right and without the leading "@". Duplicates are kept.
func ParseMentions(s string) []string {
	var mentions []string
	for _, submatch := range reMentions.FindAllStringSubmatch(s, -1) {
		mentions = append(mentions, submatch[1])
	}
	return mentions
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
