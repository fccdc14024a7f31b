package segment

import "strings"

// BoundLength cuts every sentence longer than maxLen code points into
// pieces of at most maxLen. A cut is placed at the last space within the
// limit; without one the sentence is cut at the limit itself. Pieces are
// trimmed. maxLen < 1 returns sentences unchanged.
func BoundLength(sentences []string, maxLen int) []string {
	if maxLen < 1 {
		return sentences
	}
	bounded := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		rs := []rune(sentence)
		if len(rs) <= maxLen {
			bounded = append(bounded, sentence)
			continue
		}
		for begin := 0; begin < len(rs); {
			end := prevWordBoundary(rs, begin, begin+maxLen)
			if piece := strings.TrimSpace(string(rs[begin:end])); piece != "" {
				bounded = append(bounded, piece)
			}
			begin = end
			if begin < len(rs) && rs[begin] == ' ' {
				begin++
			}
		}
	}
	return bounded
}

func prevWordBoundary(rs []rune, begin, limit int) int {
	if limit >= len(rs) {
		return len(rs)
	}
	for i := limit; i > begin; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	tracer().Infof("no space within %d code points, cutting word %q", limit-begin, string(rs[begin:limit]))
	return limit
}

// Group joins consecutive sentences as long as the combined length stays
// below maxLen code points.
func Group(sentences []string, maxLen int) []string {
	var grouped []string
	var current []rune
	for i, sentence := range sentences {
		rs := []rune(sentence)
		switch {
		case i == 0:
			current = rs
		case len(current)+len(rs) < maxLen:
			current = append(append(current, ' '), rs...)
		default:
			grouped = append(grouped, string(current))
			current = rs
		}
	}
	if len(sentences) > 0 {
		grouped = append(grouped, string(current))
	}
	return grouped
}
