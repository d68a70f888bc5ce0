package read2env

// IsPrintable reports whether b is a printable character in the narrow set.
func IsPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// FilterPrintable compacts buf in place, keeping only printable bytes in
// their original order, and returns the number kept. buf[n:] is left stale.
//
// This is not a UTF-16 decoder. For wide text in the ASCII range it drops
// the zero half of each code unit along with any control bytes.
func FilterPrintable(buf []byte) int {
	w := 0
	for r := 0; r < len(buf); r++ {
		if IsPrintable(buf[r]) {
			buf[w] = buf[r]
			w++
		}
	}
	return w
}
