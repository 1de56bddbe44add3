package bigint

// nat is an unsigned magnitude: decimal digits, least significant first.
// A normalized nat has no high zero digits; zero is the empty slice.
type nat []byte

// karatsubaCutoff is the operand length below which mulNat switches to the
// schoolbook product.
var karatsubaCutoff = 24

func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x nat) String() string {
	if len(x) == 0 {
		return "0"
	}
	b := make([]byte, len(x))
	for i, d := range x {
		b[len(x)-1-i] = '0' + d
	}
	return string(b)
}

// cmpNat compares magnitudes by digit count first, then digit by digit from
// the most significant end.
func cmpNat(x, y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry byte
	for i := range x {
		d := x[i] + carry
		if i < len(y) {
			d += y[i]
		}
		z[i] = d % 10
		carry = d / 10
	}
	z[len(x)] = carry
	return z.norm()
}

// subNat returns x - y. The caller guarantees x >= y.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var borrow byte
	for i := range x {
		d := int(x[i]) - int(borrow)
		if i < len(y) {
			d -= int(y[i])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = byte(d)
	}
	if borrow != 0 {
		panic("bigint: magnitude underflow")
	}
	return z.norm()
}

// shiftNat multiplies x by 10^k by padding low zero digits.
func shiftNat(x nat, k int) nat {
	if len(x) == 0 || k == 0 {
		return x
	}
	z := make(nat, len(x)+k)
	copy(z[k:], x)
	return z
}

// mulDigit multiplies x by a single digit in one pass.
func mulDigit(x nat, d byte) nat {
	if d == 0 || len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+1)
	var carry byte
	for i, xd := range x {
		p := xd*d + carry
		z[i] = p % 10
		carry = p / 10
	}
	z[len(x)] = carry
	return z.norm()
}

func mulSchoolbook(x, y nat) nat {
	acc := make([]int, len(x)+len(y))
	for i, xd := range x {
		if xd == 0 {
			continue
		}
		for j, yd := range y {
			acc[i+j] += int(xd) * int(yd)
		}
	}
	z := make(nat, len(acc))
	carry := 0
	for i, v := range acc {
		v += carry
		z[i] = byte(v % 10)
		carry = v / 10
	}
	return z.norm()
}

// splitNat returns the low m digits and the remaining high digits of x.
// Operands shorter than the split point yield a zero high half, which is the
// same as padding them with leading zeros.
func splitNat(x nat, m int) (lo, hi nat) {
	if len(x) <= m {
		return x, nil
	}
	return x[:m].norm(), x[m:]
}

// mulNat is Karatsuba multiplication over decimal digits:
//
//	x·y = z2·10^(2m) + (z1 - z2 - z0)·10^m + z0
//
// with z0 = lo·lo, z2 = hi·hi and z1 = (lo+hi)·(lo+hi).
func mulNat(x, y nat) nat {
	switch {
	case len(x) == 0 || len(y) == 0:
		return nil
	case len(x) == 1:
		return mulDigit(y, x[0])
	case len(y) == 1:
		return mulDigit(x, y[0])
	case len(x) < karatsubaCutoff || len(y) < karatsubaCutoff:
		return mulSchoolbook(x, y)
	}

	n := max(len(x), len(y))
	m := n / 2
	xlo, xhi := splitNat(x, m)
	ylo, yhi := splitNat(y, m)

	z0 := mulNat(xlo, ylo)
	z2 := mulNat(xhi, yhi)
	z1 := mulNat(addNat(xlo, xhi), addNat(ylo, yhi))
	cross := subNat(subNat(z1, z2), z0)

	return addNat(addNat(shiftNat(z2, 2*m), shiftNat(cross, m)), z0)
}

// halfNat divides x by two in a single most-significant-first pass, carrying
// the 0/1 remainder into the next digit.
func halfNat(x nat) nat {
	z := make(nat, len(x))
	var carry byte
	for i := len(x) - 1; i >= 0; i-- {
		cur := carry*10 + x[i]
		z[i] = cur / 2
		carry = cur % 2
	}
	return z.norm()
}

// absorb returns r·10 + d.
func absorb(r nat, d byte) nat {
	z := make(nat, len(r)+1)
	z[0] = d
	copy(z[1:], r)
	return z.norm()
}

// quoRemNat is long division by incremental digit absorption. Each dividend
// digit is appended to the running remainder, then the largest multiple d·v
// not exceeding the remainder is subtracted and d becomes the quotient digit.
// The remainder stays below v, so d is always in [0, 9]; the nine multiples
// are built once per call. v must be non-zero.
func quoRemNat(u, v nat) (q, r nat) {
	if cmpNat(u, v) < 0 {
		return nil, u
	}
	var multiples [10]nat
	for d := 1; d < 10; d++ {
		multiples[d] = mulDigit(v, byte(d))
	}

	q = make(nat, len(u))
	for i := len(u) - 1; i >= 0; i-- {
		r = absorb(r, u[i])
		d := 9
		for d > 0 && cmpNat(multiples[d], r) > 0 {
			d--
		}
		if d > 0 {
			r = subNat(r, multiples[d])
		}
		q[i] = byte(d)
	}
	return q.norm(), r
}
