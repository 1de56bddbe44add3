// Package random draws uniformly distributed bigint.Int values from a
// cryptographically secure byte stream.
//
// Candidates are built digit by digit: each decimal digit comes from one
// byte, with bytes >= 250 rejected so every digit is equally likely. A
// candidate with as many digits as the bound is then kept only when it lies
// in the requested range. The loops have no retry limit but terminate with
// probability 1.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
)

// ErrInvalidModulus reports a bound too small to draw from.
var ErrInvalidModulus = errors.New("random: bound too small")

// Source samples integers from an underlying reader. The zero value reads
// from crypto/rand.
type Source struct {
	Reader io.Reader
}

// New returns a Source reading from r, or crypto/rand when r is nil.
func New(r io.Reader) *Source {
	return &Source{Reader: r}
}

func (s *Source) reader() io.Reader {
	if s == nil || s.Reader == nil {
		return rand.Reader
	}
	return s.Reader
}

// digits returns n uniformly random decimal digits as text.
func (s *Source) digits(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(s.reader(), buf[:n-len(out)]); err != nil {
			return "", fmt.Errorf("random: read entropy: %w", err)
		}
		for _, b := range buf[:n-len(out)] {
			if b < 250 {
				out = append(out, '0'+b%10)
			}
		}
	}
	return string(out), nil
}

// RandomBelow returns a uniform integer in (0, bound).
func (s *Source) RandomBelow(bound bigint.Int) (bigint.Int, error) {
	if bigint.Cmp(bound, bigint.One()) <= 0 {
		return bigint.Int{}, fmt.Errorf("%w: %s", ErrInvalidModulus, bound)
	}
	for {
		text, err := s.digits(bound.Len())
		if err != nil {
			return bigint.Int{}, err
		}
		c := bigint.MustParse(text)
		if c.Sign() > 0 && bigint.Cmp(c, bound) < 0 {
			return c, nil
		}
	}
}

// ChooseTwoDistinct returns two distinct uniform integers in [1, p-1],
// redrawing the second on collision. p must be at least 3.
func (s *Source) ChooseTwoDistinct(p bigint.Int) (bigint.Int, bigint.Int, error) {
	if bigint.Cmp(p, bigint.FromUint64(2)) <= 0 {
		return bigint.Int{}, bigint.Int{}, fmt.Errorf("%w: %s", ErrInvalidModulus, p)
	}
	a, err := s.RandomBelow(p)
	if err != nil {
		return bigint.Int{}, bigint.Int{}, err
	}
	for {
		b, err := s.RandomBelow(p)
		if err != nil {
			return bigint.Int{}, bigint.Int{}, err
		}
		if !a.Equal(b) {
			return a, b, nil
		}
	}
}
