package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrSliceWithDefault returns the first non-empty slice, or the fallback.
// The result is never shared with the fallback so callers can append freely.
func StrSliceWithDefault(fallback []string, slices ...[]string) []string {
	for _, s := range slices {
		if len(s) > 0 {
			return s
		}
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}

// UniqueStrings returns vals with duplicates removed, preserving the order
// of first occurrence.
func UniqueStrings(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
