package random

import "strings"

const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFJHIJKLMNOPQRSTUVWXYZ"

// ASCIIString generates random ASCII string which never starts with a digit
func ASCIIString(minLen, maxLen int) string {
	slen := intn(minLen, maxLen)

	var b strings.Builder
	b.Grow(slen)
	for b.Len() < slen {
		char := letters[rnd.Intn(len(letters))]
		if b.Len() == 0 && '0' <= char && char <= '9' {
			continue
		}
		b.WriteByte(char)
	}
	return b.String()
}
