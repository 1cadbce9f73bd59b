package arith

import (
	"errors"
	"math/big"

	"github.com/cronokirby/saferith"
)

var ErrInvalidModulus = errors.New("arith: modulus must be greater than one")

// Modulus wraps a saferith.Modulus and exposes the handful of modular
// operations the Gq and Zq groups are built on.
type Modulus struct {
	*saferith.Modulus
	// cached n
	nat *saferith.Nat
}

// ModulusFromBig returns the modulus n, which must be greater than one.
func ModulusFromBig(n *big.Int) (*Modulus, error) {
	if n == nil || n.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrInvalidModulus
	}
	nat := new(saferith.Nat).SetBig(n, n.BitLen())
	return &Modulus{
		Modulus: saferith.ModulusFromNat(nat),
		nat:     nat,
	}, nil
}

// ModulusFromN creates a simple wrapper around a given modulus n.
// The modulus is not copied.
func ModulusFromN(n *saferith.Modulus) *Modulus {
	return &Modulus{
		Modulus: n,
		nat:     n.Nat(),
	}
}

// Big returns n as a fresh big.Int.
func (n *Modulus) Big() *big.Int {
	return n.nat.Big()
}

// NatFromBig lifts x into a Nat sized for n. The caller is responsible for
// range checks.
func (n *Modulus) NatFromBig(x *big.Int) *saferith.Nat {
	return new(saferith.Nat).SetBig(x, n.BitLen())
}

// Contains reports whether 0 ≤ x < n.
func (n *Modulus) Contains(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(n.Big()) < 0
}

// Equal reports whether both moduli hold the same value.
func (n *Modulus) Equal(other *Modulus) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.nat.Eq(other.nat) == 1
}

// Exp returns xᵉ (mod n).
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(x, e, n.Modulus)
}

// Mul returns x⋅y (mod n).
func (n *Modulus) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(x, y, n.Modulus)
}

// Add returns x+y (mod n).
func (n *Modulus) Add(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModAdd(x, y, n.Modulus)
}

// Sub returns x-y (mod n).
func (n *Modulus) Sub(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModSub(x, y, n.Modulus)
}

// Neg returns -x (mod n).
func (n *Modulus) Neg(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModNeg(x, n.Modulus)
}

// Minus returns n-k as a Nat, for small k.
func (n *Modulus) Minus(k uint64) *saferith.Nat {
	return n.NatFromBig(new(big.Int).Sub(n.Big(), new(big.Int).SetUint64(k)))
}
