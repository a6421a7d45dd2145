package pattern

import "github.com/d-barletta/streamguard/internal/simd"

// scanCreditCard recognizes a 13-19 digit run, optionally grouped by a
// single uniform separator ('-' or ' '), that passes the Luhn mod-10
// check after separators are stripped. A candidate may not start
// mid-digit-run; tryParseCard's own digit-consuming loop already
// guarantees the match cannot end mid-digit-run either.
func scanCreditCard(data []byte) (matches []span, pendingStart int) {
	pos := 0
	for pos < len(data) {
		rel := simd.IndexDigit(data[pos:])
		if rel < 0 {
			return matches, -1
		}
		start := pos + rel

		if start > 0 && isDigit(data[start-1]) {
			pos = start + 1
			continue
		}

		end, pending, ok := tryParseCard(data, start)
		if pending {
			return matches, start
		}
		if !ok {
			pos = start + 1
			continue
		}
		if luhnValid(data, start, end) {
			matches = append(matches, span{start, end})
			pos = end
		} else {
			pos = start + 1
		}
	}
	return matches, -1
}

// tryParseCard consumes digit groups separated by a single uniform
// separator starting at start. It returns the end offset of a 13-19 digit
// candidate with ok=true, pending=true when the candidate runs to the end of
// data and might still extend, or ok=false when there is no candidate. The
// caller runs the Luhn check over [start,end).
func tryParseCard(data []byte, start int) (end int, pending bool, ok bool) {
	k := start
	sep := byte(0)
	total := 0

	for {
		groupStart := k
		for k < len(data) && isDigit(data[k]) {
			k++
		}
		total += k - groupStart
		if k == len(data) {
			return 0, true, false
		}

		c := data[k]
		if c == '-' || c == ' ' {
			if k+1 == len(data) {
				return 0, true, false
			}
			if !isDigit(data[k+1]) {
				break
			}
			if sep == 0 {
				sep = c
			} else if sep != c {
				break
			}
			k++
			continue
		}
		break
	}

	if total < 13 || total > 19 {
		return 0, false, false
	}
	return k, false, true
}

// luhnValid runs the Luhn mod-10 checksum over the digit bytes in
// [start, end), ignoring '-' and ' ' separators.
func luhnValid(data []byte, start, end int) bool {
	sum := 0
	double := false
	for i := end - 1; i >= start; i-- {
		b := data[i]
		if b == '-' || b == ' ' {
			continue
		}
		d := int(b - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
