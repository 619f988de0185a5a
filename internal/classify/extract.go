package classify

import "strings"

// ExtractJSON pulls the first top-level JSON object out of a free-text LLM
// reply: the substring from the first '{' to the last '}', inclusive. Models
// wrap their JSON in prose and markdown fences; this contract survives both.
// Returns false when no such substring exists.
func ExtractJSON(reply string) (string, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return reply[start : end+1], true
}
