package pattern

// Byte-class predicates for the hand-coded grammars, following the
// teacher's ByteClasses idiom of O(1) array lookups instead of repeated
// range comparisons on the hot scanning path.

var (
	isAlphaTable   [256]bool
	isDigitTable   [256]bool
	isLocalTable   [256]bool // email local-part: alnum + ._%+-
	isLabelTable   [256]bool // domain label: alnum + '-'
	isURLPathTable [256]bool
	isURLStopTable [256]bool // whitespace, quote, angle bracket: ends a URL
)

func init() {
	for c := byte('0'); c <= '9'; c++ {
		isDigitTable[c] = true
		isLocalTable[c] = true
		isLabelTable[c] = true
		isURLPathTable[c] = true
	}
	for c := byte('a'); c <= 'z'; c++ {
		isAlphaTable[c] = true
		isLocalTable[c] = true
		isLabelTable[c] = true
		isURLPathTable[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		isAlphaTable[c] = true
		isLocalTable[c] = true
		isLabelTable[c] = true
		isURLPathTable[c] = true
	}
	for _, c := range []byte("._%+-") {
		isLocalTable[c] = true
	}
	isLabelTable['-'] = true
	for _, c := range []byte("._~:/?#[]@!$&'()*+,;=%-") {
		isURLPathTable[c] = true
	}
	for _, c := range []byte(" \t\r\n\"'<>") {
		isURLStopTable[c] = true
	}
}

func isAlpha(b byte) bool   { return isAlphaTable[b] }
func isDigit(b byte) bool   { return isDigitTable[b] }
func isLocal(b byte) bool   { return isLocalTable[b] }
func isLabel(b byte) bool   { return isLabelTable[b] }
func isURLPath(b byte) bool { return isURLPathTable[b] }
func isURLStop(b byte) bool { return isURLStopTable[b] }
