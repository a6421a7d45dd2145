package pattern

import "bytes"

// scanEmail recognizes local "@" domain "." tld, per spec §4.4:
//
//	local  ∈ [A-Za-z0-9._%+-]{1,64}
//	domain = one or more dot-separated labels of [A-Za-z0-9-]{1,63},
//	         each not beginning or ending with '-'
//	tld    ∈ [A-Za-z]{2,24}
//
// Matches end at the first byte not in the TLD alphabet, or at data end (in
// which case the whole candidate, starting at the local part, is reported
// pending).
func scanEmail(data []byte) (matches []span, pendingStart int) {
	cursor := 0
	pos := 0

	for pos < len(data) {
		rel := bytes.IndexByte(data[pos:], '@')
		if rel < 0 {
			return matches, trailingLocalRun(data, cursor)
		}
		at := pos + rel

		localStart := at
		for localStart > cursor && isLocal(data[localStart-1]) && at-(localStart-1) <= 64 {
			localStart--
		}
		if localStart == at {
			pos = at + 1
			continue
		}

		k := at + 1
		labelCount := 0
		lastStart, lastEnd := k, k
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
			lastStart, lastEnd = labelStart, k
			if data[k] == '.' {
				k++
				continue
			}
			break
		}

		if !valid {
			pos = at + 1
			continue
		}
		if reachedEnd {
			return matches, localStart
		}

		tldLen := lastEnd - lastStart
		isTLD := tldLen >= 2 && tldLen <= 24
		if isTLD {
			for b := lastStart; b < lastEnd; b++ {
				if !isAlpha(data[b]) {
					isTLD = false
					break
				}
			}
		}

		if isTLD && labelCount >= 2 {
			matches = append(matches, span{localStart, lastEnd})
			cursor = lastEnd
			pos = lastEnd
		} else {
			pos = at + 1
		}
	}

	return matches, -1
}

// trailingLocalRun reports the start of a maximal suffix of local-part
// bytes at or after cursor, which might become the start of an email once
// an '@' arrives in a future chunk.
func trailingLocalRun(data []byte, cursor int) int {
	i := len(data)
	for i > cursor && isLocal(data[i-1]) && len(data)-(i-1) <= 64 {
		i--
	}
	if i == len(data) {
		return -1
	}
	return i
}
