package pattern

import "bytes"

var urlSchemes = [][]byte{[]byte("https://"), []byte("http://")}

// scanURL recognizes ("http://" | "https://") host [":" port] [path], per
// spec §4.4. Host follows the domain-label grammar (dot-separated labels
// of [A-Za-z0-9-]{1,63}, not starting/ending with '-'); path bytes are the
// spec's explicit path alphabet. The match ends at whitespace, a quote, an
// angle bracket, or any other byte outside the path alphabet.
func scanURL(data []byte) (matches []span, pendingStart int) {
	pos := 0
	for pos < len(data) {
		start, schemeLen := findScheme(data, pos)
		if start < 0 {
			return matches, schemePendingStart(data)
		}

		k := start + schemeLen
		labelCount := 0
		reachedEnd := false
		valid := true

		for {
			labelStart := k
			for k < len(data) && isLabel(data[k]) {
				k++
			}
			labelLen := k - labelStart
			if k == len(data) && labelLen <= 63 && (labelLen == 0 || data[labelStart] != '-') {
				// The label (possibly still empty) may grow with the next chunk.
				reachedEnd = true
				break
			}
			if labelLen == 0 || labelLen > 63 || data[labelStart] == '-' || data[k-1] == '-' {
				valid = false
				break
			}
			labelCount++
			if data[k] == '.' {
				k++
				continue
			}
			break
		}

		if reachedEnd {
			return matches, start
		}
		if !valid || labelCount == 0 {
			pos = start + 1
			continue
		}

		if k < len(data) && data[k] == ':' {
			p := k + 1
			for p < len(data) && isDigit(data[p]) {
				p++
			}
			if p > k+1 {
				k = p
			}
			if k == len(data) {
				return matches, start
			}
		}

		for k < len(data) && isURLPath(data[k]) && !isURLStop(data[k]) {
			k++
		}
		if k == len(data) {
			return matches, start
		}

		matches = append(matches, span{start, k})
		pos = k
	}
	return matches, -1
}

// findScheme returns the earliest position at or after pos where a scheme
// prefix begins, and its length (7 for "http://", 8 for "https://"), or -1
// if no scheme occurs in data[pos:].
func findScheme(data []byte, pos int) (start, length int) {
	best := -1
	bestLen := 0
	for _, scheme := range urlSchemes {
		if rel := bytes.Index(data[pos:], scheme); rel >= 0 {
			idx := pos + rel
			if best < 0 || idx < best {
				best = idx
				bestLen = len(scheme)
			}
		}
	}
	return best, bestLen
}

// schemePendingStart reports the start of a trailing partial match of
// "http://" or "https://" at the very end of data, if any.
func schemePendingStart(data []byte) int {
	maxLen := 8
	if maxLen > len(data) {
		maxLen = len(data)
	}
	for n := maxLen; n >= 1; n-- {
		tail := data[len(data)-n:]
		for _, scheme := range urlSchemes {
			if n < len(scheme) && bytes.Equal(tail, scheme[:n]) {
				return len(data) - n
			}
		}
	}
	return -1
}
