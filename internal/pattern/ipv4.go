package pattern

import "github.com/d-barletta/streamguard/internal/simd"

// scanIPv4 recognizes four decimal octets 0-255, dot-separated, each 1-3
// digits, per spec §4.4: "no leading-zero run longer than 1 (`010` is
// allowed per Postel but `0100` is not a valid octet)". A candidate must be
// bounded by non-digit bytes (or input boundaries) on both ends.
func scanIPv4(data []byte) (matches []span, pendingStart int) {
	pos := 0
	for pos < len(data) {
		rel := simd.IndexDigit(data[pos:])
		if rel < 0 {
			return matches, -1
		}
		start := pos + rel

		if start > 0 && isDigit(data[start-1]) {
			j := start
			for j < len(data) && isDigit(data[j]) {
				j++
			}
			pos = j
			continue
		}

		end, ok, pending := tryParseIPv4(data, start)
		switch {
		case pending:
			return matches, start
		case ok:
			matches = append(matches, span{start, end})
			pos = end
		default:
			j := start
			for j < len(data) && (isDigit(data[j]) || data[j] == '.') {
				j++
			}
			if j == start {
				j = start + 1
			}
			pos = j
		}
	}
	return matches, -1
}

// tryParseIPv4 attempts to parse exactly four dot-separated octets
// starting at start, assuming start is already a valid boundary (not
// preceded by a digit).
func tryParseIPv4(data []byte, start int) (end int, ok bool, pending bool) {
	k := start
	for octet := 0; octet < 4; octet++ {
		digStart := k
		window := data[digStart:]
		if len(window) > 3 {
			window = window[:3]
		}
		if rel := simd.IndexNonDigit(window); rel >= 0 {
			k = digStart + rel
		} else {
			k = digStart + len(window)
		}
		digLen := k - digStart

		if k == len(data) {
			return 0, false, true
		}
		if digLen == 0 {
			return 0, false, false
		}
		if digLen >= 2 && data[digStart] == '0' && data[digStart+1] == '0' {
			return 0, false, false
		}
		if value(data[digStart:k]) > 255 {
			return 0, false, false
		}
		if digLen == 3 && isDigit(data[k]) {
			return 0, false, false
		}

		if octet < 3 {
			if data[k] != '.' {
				return 0, false, false
			}
			k++
			if k == len(data) {
				return 0, false, true
			}
		}
	}
	return k, true, false
}

func value(digits []byte) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}
