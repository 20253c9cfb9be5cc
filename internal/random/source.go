package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
)

// rnd generates new random generator with new source for each binary call
var rnd = func() *mathrand.Rand {
	buf := make([]byte, 8)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		panic(err)
	}
	return mathrand.New(mathrand.NewSource(int64(binary.LittleEndian.Uint64(buf))))
}()

// Seed заменяет источник случайных чисел детерминированным.
// Not safe for concurrent use with the generators.
func Seed(seed int64) {
	rnd = mathrand.New(mathrand.NewSource(seed))
}

// intn returns random int in [from, to)
func intn(from, to int) int {
	if to <= from {
		return from
	}
	return rnd.Intn(to-from) + from
}
