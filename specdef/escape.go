package specdef

import (
	"strings"
)

// escapeMarker introduces a two-byte escape sequence inside terminal text.
// The escapable set and its positional replacements let terminals contain
// whitespace and operator-significant characters literally.
const (
	escapeMarker = '@'
	escapable    = "_@|*$"
	replacements = " @|*$"
)

// appendEscaped appends src to dst byte for byte, replacing each marker byte
// followed by a byte of the escapable set with the replacement byte at the
// same position. A marker followed by a byte outside the set is reported
// through unknown and copied literally. Each resolved pair collapses two
// source bytes into one, so the appended length may be less than len(src).
// Returns ok == false if src ends with a dangling marker; dst is unchanged
// in that case.
func appendEscaped(dst, src []byte, marker byte, from, to string, unknown func(escaped byte)) (res []byte, ok bool) {
	mark := len(dst)
	for i := 0; i < len(src); i++ {
		b := src[i]
		if b != marker {
			dst = append(dst, b)
			continue
		}

		if i == len(src)-1 {
			return dst[:mark], false
		}

		i++
		b = src[i]
		j := strings.IndexByte(from, b)
		if j >= 0 {
			b = to[j]
		} else if unknown != nil {
			unknown(b)
		}
		dst = append(dst, b)
	}

	return dst, true
}
