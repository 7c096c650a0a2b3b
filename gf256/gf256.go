// Package gf256 implements arithmetic over the Galois field GF(2^8).
//
// Elements are plain bytes. The field is defined by the irreducible
// polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with generator 2, and
// multiplication and division go through precomputed logarithm and
// exponent tables.
package gf256

const (
	// Polynomial is the irreducible polynomial defining the field.
	Polynomial = 0x11D

	// Generator is the generator of the multiplicative group used to build the tables.
	Generator = 2

	// Order is the order of the multiplicative group.
	Order = 255
)

var (
	// expTable[i] = Generator^i; expTable[255] wraps back to 1.
	expTable [256]byte

	// logTable[expTable[i]] = i. logTable[0] is never read.
	logTable [256]byte
)

func init() {
	expTable, logTable = buildTables(Polynomial, Generator)
}

// buildTables walks the powers of the generator and fills both tables.
func buildTables(poly, generator int) (exp, log [256]byte) {
	x := 1
	for i := 0; i < Order; i++ {
		exp[i] = byte(x)
		log[x] = byte(i)
		x = slowMul(x, generator, poly)
	}
	exp[Order] = exp[0]

	return exp, log
}

// slowMul multiplies a and b modulo poly bit by bit. Only used to build tables.
func slowMul(a, b, poly int) int {
	var r int
	for b > 0 {
		if b&1 == 1 {
			r ^= a
		}
		b >>= 1
		a <<= 1
		if a&0x100 != 0 {
			a ^= poly
		}
	}
	return r
}

// Add adds two elements. Addition in GF(2^8) is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub subtracts b from a. It is identical to Add.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul multiplies two elements.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(int(logTable[a])+int(logTable[b]))%Order]
}

// Div divides a by b. It returns ErrDivisionByZero if b is zero.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	return expTable[(int(logTable[a])-int(logTable[b])+Order)%Order], nil
}

// Inverse returns the multiplicative inverse of a.
// Zero has no inverse and yields ErrDivisionByZero.
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return expTable[(Order-int(logTable[a]))%Order], nil
}

// Exp returns Generator^i. Negative exponents wrap around the group order.
func Exp(i int) byte {
	i %= Order
	if i < 0 {
		i += Order
	}
	return expTable[i]
}

// Log returns the discrete logarithm of a in base Generator.
func Log(a byte) (int, error) {
	if a == 0 {
		return 0, ErrLogOfZero
	}
	return int(logTable[a]), nil
}

// Pow raises a to the e-th power. Pow(a, 0) is 1 for every a, including zero.
func Pow(a byte, e int) byte {
	if e == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return Exp(int(logTable[a]) * (e % Order))
}
