package descriptor

// ExpandBraces expands brace alternatives in a glob pattern:
// "./src/**/*.{js,ts}" yields "./src/**/*.js" and "./src/**/*.ts".
// Groups may nest and repeat. A group without a comma, or an unbalanced
// brace, is kept literally.
func ExpandBraces(pattern string) []string {
	open, closing, alts := firstGroup(pattern)
	if open < 0 {
		return []string{pattern}
	}

	prefix, suffix := pattern[:open], pattern[closing+1:]
	var out []string
	for _, alt := range alts {
		out = append(out, ExpandBraces(prefix+alt+suffix)...)
	}
	return out
}

// firstGroup locates the first brace group that contains a top-level comma
// and returns its bounds and alternatives. open is -1 when there is none.
func firstGroup(s string) (open, closing int, alts []string) {
	for start := 0; start < len(s); start++ {
		if s[start] != '{' {
			continue
		}
		depth := 0
		last := start + 1
		var parts []string
		for i := start; i < len(s); i++ {
			switch s[i] {
			case '{':
				depth++
			case ',':
				if depth == 1 {
					parts = append(parts, s[last:i])
					last = i + 1
				}
			case '}':
				depth--
				if depth == 0 {
					if parts == nil {
						// "{x}" has nothing to expand itself, but a group nested
						// inside it may; resume scanning after its opening brace
						i = len(s)
						break
					}
					return start, i, append(parts, s[last:i])
				}
			}
		}
		if depth > 0 {
			break
		}
	}
	return -1, -1, nil
}
