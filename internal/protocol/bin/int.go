package bin

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var errIntRange = errors.New("bin: integer out of range")

// Int128 is a 128-bit two's complement integer in wire (little-endian) order.
type Int128 [16]byte

// Int256 is a 256-bit two's complement integer in wire (little-endian) order.
type Int256 [32]byte

// BigInt returns the signed value of v.
func (v Int128) BigInt() *big.Int { return signedFromLE(v[:]) }

// Int128FromBig converts x, which must fit in 128 signed bits.
func Int128FromBig(x *big.Int) (Int128, error) {
	var v Int128
	err := leFromSigned(x, v[:])
	return v, err
}

// BigInt returns the signed value of v.
func (v Int256) BigInt() *big.Int { return signedFromLE(v[:]) }

// Int256FromBig converts x, which must fit in 256 signed bits.
func Int256FromBig(x *big.Int) (Int256, error) {
	var v Int256
	err := leFromSigned(x, v[:])
	return v, err
}

// Uint256 returns the bit pattern of v as a uint256. Signed helpers on
// uint256.Int (Sgt, SDiv, ...) interpret it as two's complement.
func (v Int256) Uint256() *uint256.Int {
	be := reversed(v[:])
	return new(uint256.Int).SetBytes32(be)
}

// Int256FromUint256 stores the bit pattern of x.
func Int256FromUint256(x *uint256.Int) Int256 {
	be := x.Bytes32()
	var v Int256
	copy(v[:], reversed(be[:]))
	return v
}

func signedFromLE(le []byte) *big.Int {
	x := new(big.Int).SetBytes(reversed(le))
	if le[len(le)-1]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(len(le)*8)))
	}
	return x
}

func leFromSigned(x *big.Int, out []byte) error {
	bits := len(out) * 8
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if x.Cmp(limit) >= 0 || x.Cmp(new(big.Int).Neg(limit)) < 0 {
		return errIntRange
	}
	u := new(big.Int).Set(x)
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	}
	u.FillBytes(out)
	copy(out, reversed(out))
	return nil
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
