package simd

import "testing"

func TestIsDigit(t *testing.T) {
	for b := byte(0); b < 255; b++ {
		want := b >= '0' && b <= '9'
		if IsDigit(b) != want {
			t.Fatalf("IsDigit(%q) = %v, want %v", b, IsDigit(b), want)
		}
	}
}

func TestIndexDigitEmpty(t *testing.T) {
	if got := IndexDigit(nil); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestIndexDigitNoDigits(t *testing.T) {
	if got := IndexDigit([]byte("no digits in this string at all, none here")); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestIndexDigitShortHaystack(t *testing.T) {
	// Under the SWAR threshold: always takes the scalar path.
	if got := IndexDigit([]byte("ab3d")); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestIndexDigitAtEachWordBoundary(t *testing.T) {
	// A 40-byte haystack crosses the swarThreshold (32) and spans multiple
	// 8-byte SWAR windows; place the digit at each relevant offset in turn.
	for _, pos := range []int{0, 7, 8, 15, 16, 23, 24, 31, 32, 39} {
		buf := make([]byte, 40)
		for i := range buf {
			buf[i] = 'x'
		}
		buf[pos] = '7'
		if got := IndexDigit(buf); got != pos {
			t.Fatalf("digit at %d: got %d, want %d", pos, got, pos)
		}
	}
}

func TestIndexDigitAllDigits(t *testing.T) {
	buf := make([]byte, 40)
	for i := range buf {
		buf[i] = '5'
	}
	if got := IndexDigit(buf); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestIndexDigitExactlyAtThreshold(t *testing.T) {
	buf := make([]byte, swarThreshold)
	for i := range buf {
		buf[i] = 'z'
	}
	buf[swarThreshold-1] = '9'
	if got := IndexDigit(buf); got != swarThreshold-1 {
		t.Fatalf("got %d, want %d", got, swarThreshold-1)
	}
}

func TestIndexNonDigitAllDigits(t *testing.T) {
	if got := IndexNonDigit([]byte("123456")); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestIndexNonDigitFindsSeparator(t *testing.T) {
	if got := IndexNonDigit([]byte("1234-5678")); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestIndexNonDigitEmpty(t *testing.T) {
	if got := IndexNonDigit(nil); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}
