package modular_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/modular"
)

func toNat(t *testing.T, x bigint.Int) *saferith.Nat {
	t.Helper()
	b, ok := new(big.Int).SetString(x.String(), 10)
	require.True(t, ok)
	return new(saferith.Nat).SetBig(b, b.BitLen())
}

// randOdd returns a random odd number with up to digits decimal digits,
// at least 3.
func randOdd(r *rand.Rand, digits int) bigint.Int {
	b := new(big.Int).Rand(r, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	b.SetBit(b, 0, 1)
	if b.Cmp(big.NewInt(3)) < 0 {
		b.SetInt64(3)
	}
	return bigint.MustParse(b.String())
}

func randBelow(r *rand.Rand, digits int) bigint.Int {
	b := new(big.Int).Rand(r, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	return bigint.MustParse(b.String())
}

func TestExp_Examples(t *testing.T) {
	cases := []struct{ base, exp, mod, want string }{
		{"4", "13", "497", "445"},
		{"5", "6", "23", "8"},
		{"5", "15", "23", "19"},
		{"19", "6", "23", "2"},
		{"7", "0", "13", "1"},
		{"0", "5", "13", "0"},
		{"-2", "3", "13", "5"},
		{"2", "1000", "1000000007", "688423210"},
		{"123456789", "987654321", "1000000007", "652541198"},
	}
	for _, c := range cases {
		got, err := modular.Exp(bigint.MustParse(c.base), bigint.MustParse(c.exp), bigint.MustParse(c.mod))
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "%s^%s mod %s", c.base, c.exp, c.mod)
	}
}

func TestExp_RejectsUnsupportedInput(t *testing.T) {
	_, err := modular.Exp(bigint.MustParse("2"), bigint.MustParse("-1"), bigint.MustParse("7"))
	assert.ErrorIs(t, err, modular.ErrNegativeExponent)

	for _, m := range []string{"1", "0", "-7"} {
		_, err = modular.Exp(bigint.MustParse("2"), bigint.MustParse("3"), bigint.MustParse(m))
		assert.ErrorIs(t, err, modular.ErrInvalidModulus, "modulus %s", m)
	}
}

func TestExp_AgainstSaferith(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		m := randOdd(r, 30)
		base := randBelow(r, 40)
		exp := randBelow(r, 25)

		got, err := modular.Exp(base, exp, m)
		require.NoError(t, err)

		mod := saferith.ModulusFromNat(toNat(t, m))
		x := new(saferith.Nat).Mod(toNat(t, base), mod)
		want := new(saferith.Nat).Exp(x, toNat(t, exp), mod)
		require.Equal(t, want.Big().String(), got.String(), "%s^%s mod %s", base, exp, m)
	}
}

func TestInverse_Examples(t *testing.T) {
	cases := []struct{ a, m, want string }{
		{"3", "7", "5"},
		{"17", "3120", "2753"},
		{"1", "2", "1"},
		{"-3", "7", "2"},
		{"10", "7", "5"},
		{"12345678901234567890", "1000000007", "782581696"},
	}
	for _, c := range cases {
		a, m := bigint.MustParse(c.a), bigint.MustParse(c.m)
		got, err := modular.Inverse(a, m)
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "inverse of %s mod %s", c.a, c.m)

		other, err := modular.InverseOf(m, a)
		require.NoError(t, err)
		assert.Equal(t, c.want, other.String(), "InverseOf(%s, %s)", c.m, c.a)

		check, err := modular.MulMod(a, got, m)
		require.NoError(t, err)
		assert.Equal(t, "1", check.String())
	}
}

func TestInverse_NotInvertible(t *testing.T) {
	for _, c := range [][2]string{{"4", "8"}, {"0", "7"}, {"14", "7"}, {"6", "9"}} {
		_, err := modular.Inverse(bigint.MustParse(c[0]), bigint.MustParse(c[1]))
		assert.ErrorIs(t, err, modular.ErrNotInvertible, "inverse of %s mod %s", c[0], c[1])
		_, err = modular.InverseOf(bigint.MustParse(c[1]), bigint.MustParse(c[0]))
		assert.ErrorIs(t, err, modular.ErrNotInvertible)
	}
	_, err := modular.Inverse(bigint.MustParse("3"), bigint.MustParse("1"))
	assert.ErrorIs(t, err, modular.ErrInvalidModulus)
}

func TestInverse_AgainstSaferith(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 60; i++ {
		m := randOdd(r, 28)
		a := randBelow(r, 28)

		got, err := modular.Inverse(a, m)
		g := new(big.Int).GCD(nil, nil, new(big.Int).Mod(toNat(t, a).Big(), toNat(t, m).Big()), toNat(t, m).Big())
		if g.Cmp(big.NewInt(1)) != 0 {
			require.ErrorIs(t, err, modular.ErrNotInvertible, "inverse of %s mod %s", a, m)
			continue
		}
		require.NoError(t, err)

		mod := saferith.ModulusFromNat(toNat(t, m))
		x := new(saferith.Nat).Mod(toNat(t, a), mod)
		want := new(saferith.Nat).ModInverse(x, mod)
		require.Equal(t, want.Big().String(), got.String(), "inverse of %s mod %s", a, m)
	}
}

func TestExtendedGCD_Bezout(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		a, b := randBelow(r, 30), randBelow(r, 20)
		bz, err := modular.ExtendedGCD(a, b)
		require.NoError(t, err)

		lhs := bigint.Add(bigint.Mul(a, bz.X), bigint.Mul(b, bz.Y))
		require.True(t, lhs.Equal(bz.GCD), "%s·%s + %s·%s != %s", a, bz.X, b, bz.Y, bz.GCD)

		g, err := modular.GCD(a, b)
		require.NoError(t, err)
		require.True(t, g.Equal(bz.GCD))

		want := new(big.Int).GCD(nil, nil, toNat(t, a).Big(), toNat(t, b).Big())
		require.Equal(t, want.String(), g.String())
	}

	_, err := modular.ExtendedGCD(bigint.MustParse("-4"), bigint.MustParse("6"))
	assert.ErrorIs(t, err, modular.ErrNegativeOperand)
	_, err = modular.GCD(bigint.MustParse("4"), bigint.MustParse("-6"))
	assert.ErrorIs(t, err, modular.ErrNegativeOperand)
}

// TestExp_ConcurrentCallers runs the same exponentiation from many
// goroutines; values are immutable so every caller sees the same result.
func TestExp_ConcurrentCallers(t *testing.T) {
	base := bigint.MustParse("123456789")
	exp := bigint.MustParse("987654321")
	m := bigint.MustParse("1000000007")

	results := make([]string, 16)
	var errGroup errgroup.Group
	for i := range results {
		i := i
		errGroup.Go(func() error {
			v, err := modular.Exp(base, exp, m)
			if err != nil {
				return err
			}
			results[i] = v.String()
			return nil
		})
	}
	require.NoError(t, errGroup.Wait())
	for _, got := range results {
		assert.Equal(t, "652541198", got)
	}
}
