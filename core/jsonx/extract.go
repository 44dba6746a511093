package jsonx

import (
	"regexp"
	"strings"
)

// fenceRe matches a markdown triple-backtick code block, optionally tagged
// "json" (any case). The inner content is captured lazily so only the first
// block is consumed.
var fenceRe = regexp.MustCompile("(?i)```(?:json)?\\s*([\\s\\S]*?)```")

// Extract returns the best-guess JSON substring of text, or ok=false when no
// plausible JSON is present.
//
// The search order is fixed: the first fenced code block wins; otherwise the
// greedy object span from the first '{' to the last '}'; otherwise the
// analogous array span. When both an object and an array could match, the
// object takes priority, since an object is the expected top-level shape for
// model responses. Later fenced blocks are ignored on purpose: first block
// wins, and tests pin that convention.
//
// Extract never fails. Callers must treat ok=false as "no JSON present" and
// produce their own fallback result.
func Extract(text string) (string, bool) {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		candidate := stripArtifacts(strings.TrimSpace(m[1]))
		if candidate == "" {
			return "", false
		}
		return candidate, true
	}

	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			return stripArtifacts(text[start : end+1]), true
		}
	}
	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			return stripArtifacts(text[start : end+1]), true
		}
	}

	return "", false
}

// stripArtifacts removes known non-JSON noise from the head of a candidate:
// a byte-order mark, an XML declaration (up to the first "?>"), and a stray
// "json" line left behind by malformed markdown-hint stripping.
func stripArtifacts(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")

	if strings.HasPrefix(s, "<?") {
		if end := strings.Index(s, "?>"); end >= 0 {
			s = s[end+2:]
		}
	}

	s = strings.TrimSpace(s)
	if rest, found := strings.CutPrefix(s, "json\n"); found {
		s = rest
	} else if rest, found := strings.CutPrefix(s, "json\r\n"); found {
		s = rest
	}

	return strings.TrimSpace(s)
}
