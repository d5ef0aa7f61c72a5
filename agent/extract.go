package agent

import "strings"

// ExtractCode pulls the best-guess source payload out of a raw model
// completion. Preference order: a ```go fenced block, then any fenced block,
// then the raw text. The result is trimmed but never validated; garbage in,
// garbage out, and the test step will catch it.
func ExtractCode(raw string) string {
	if body, ok := goFence(raw); ok {
		return strings.TrimSpace(body)
	}
	if body, ok := anyFence(raw); ok {
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(raw)
}

// goFence finds the first ```go fence and returns the content up to the next
// closing fence. The tag must end its line, so ```golang does not match.
func goFence(raw string) (string, bool) {
	const marker = "```go"
	for search := raw; ; {
		start := strings.Index(search, marker)
		if start < 0 {
			return "", false
		}
		after := search[start+len(marker):]
		nl := strings.IndexByte(after, '\n')
		if nl < 0 {
			return "", false
		}
		if strings.TrimSpace(after[:nl]) != "" {
			// A longer tag such as ```golang; keep looking.
			search = after
			continue
		}
		body := after[nl+1:]
		if end := strings.Index(body, "```"); end >= 0 {
			body = body[:end]
		}
		return body, true
	}
}

// anyFence returns the content between the first pair of fences, or the text
// after an unclosed opening fence.
func anyFence(raw string) (string, bool) {
	start := strings.Index(raw, "```")
	if start < 0 {
		return "", false
	}
	body := raw[start+3:]
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return body, true
}
