// Package simd provides fast byte-classification primitives for the
// pattern matchers (IPv4 and credit-card digit runs). It mirrors the
// teacher's SIMD-dispatch idiom: CPU feature detection selects between a
// word-at-a-time (SWAR — SIMD within a register) fast path and a scalar
// byte-by-byte fallback, gated on hasAVX2 rather than compiling true SIMD
// assembly (which this module, being pure Go, does not carry).
package simd

import "golang.org/x/sys/cpu"

// hasAVX2 reports whether the CPU advertises AVX2 support. Only when it is
// set does IndexDigit use the 8-byte window loop, and then only for
// haystacks of at least swarThreshold bytes; otherwise the scalar loop runs.
// Both paths are ordinary Go and produce identical results on every
// architecture.
var hasAVX2 = cpu.X86.HasAVX2

const swarThreshold = 32

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IndexDigit returns the index of the first ASCII digit in haystack, or -1.
func IndexDigit(haystack []byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= swarThreshold {
		return indexDigitSWAR(haystack)
	}
	return indexDigitScalar(haystack)
}

// IndexNonDigit returns the index of the first byte that is not an ASCII
// digit in haystack, or -1 if every byte is a digit.
func IndexNonDigit(haystack []byte) int {
	for i, b := range haystack {
		if !IsDigit(b) {
			return i
		}
	}
	return -1
}

func indexDigitScalar(haystack []byte) int {
	for i, b := range haystack {
		if IsDigit(b) {
			return i
		}
	}
	return -1
}

// indexDigitSWAR scans 8 bytes at a time, checking the whole window for "any
// digit present" before falling back to a per-byte scan of that window to
// find the position. The window check is eight IsDigit tests joined with
// ||, not a single word-wide comparison; most 8-byte windows of prose
// contain no digit at all, so they are skipped without the positional scan.
func indexDigitSWAR(haystack []byte) int {
	i := 0
	n := len(haystack)
	for ; i+8 <= n; i += 8 {
		w := haystack[i : i+8]
		if IsDigit(w[0]) || IsDigit(w[1]) || IsDigit(w[2]) || IsDigit(w[3]) ||
			IsDigit(w[4]) || IsDigit(w[5]) || IsDigit(w[6]) || IsDigit(w[7]) {
			for j := 0; j < 8; j++ {
				if IsDigit(w[j]) {
					return i + j
				}
			}
		}
	}
	for ; i < n; i++ {
		if IsDigit(haystack[i]) {
			return i
		}
	}
	return -1
}
