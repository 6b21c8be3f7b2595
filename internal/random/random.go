package random

import (
	"crypto/rand"
	"encoding/binary"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"math/big"
	mathrand "math/rand/v2"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Letters returns n cryptographically random ASCII letters.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	upper := big.NewInt(int64(len(allowedLetters)))
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, upper)
		if err != nil {
			return "", errors.Wrap(err, "random int")
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// NewRand returns a PCG-backed generator seeded from crypto/rand. The game engine shuffles, deals goals and rolls
// liquidation dice with it.
func NewRand() (*mathrand.Rand, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, errors.Wrap(err, "read seed")
	}
	return NewSeededRand(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])), nil
}

// NewSeededRand returns a deterministic generator, used for reproducible simulations and tests.
func NewSeededRand(seed1, seed2 uint64) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(seed1, seed2))
}
