package layout

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// Spans of the fixed-point pairs, in bytes.
const (
	FixedU64Span  = Uint64Span + Uint64Span
	FixedU256Span = BlobSpan + BlobSpan
)

var errZeroBasePoint = errors.New("layout: fixed-point base point is zero")

// FixedU64 is the 64-bit precision tier of the on-chain fixed-point number:
// the represented value is Inner / BasePoint, where BasePoint is a power of
// ten. The codec never normalizes or rounds; it transcodes the pair as-is.
type FixedU64 struct {
	Inner     uint64
	BasePoint uint64
}

// FixedU64 writes the 16-byte pair in wire order.
func (e *Encoder) FixedU64(f FixedU64) {
	e.Uint64(f.Inner)
	e.Uint64(f.BasePoint)
}

// FixedU64 reads the 16-byte pair in wire order.
func (d *Decoder) FixedU64() FixedU64 {
	return FixedU64{
		Inner:     d.Uint64(),
		BasePoint: d.Uint64(),
	}
}

// EncodeFixedU64 serializes f into its 16-byte wire form.
func EncodeFixedU64(f FixedU64) []byte {
	e := NewEncoder(FixedU64Span)
	e.FixedU64(f)
	return e.Bytes()
}

// DecodeFixedU64 reads a 16-byte wire form.
func DecodeFixedU64(buf []byte) (FixedU64, error) {
	d := NewDecoder(buf)
	f := d.FixedU64()
	return f, d.Err()
}

// Decimal returns the rational value Inner / BasePoint.
func (f FixedU64) Decimal() (decimal.Decimal, error) {
	if f.BasePoint == 0 {
		return decimal.Decimal{}, errZeroBasePoint
	}
	inner := decimal.NewFromBigInt(new(big.Int).SetUint64(f.Inner), 0)
	base := decimal.NewFromBigInt(new(big.Int).SetUint64(f.BasePoint), 0)
	return inner.Div(base), nil
}

// FixedU256 is the 256-bit precision tier. The two tiers are distinct wire
// formats and must never be interchanged.
type FixedU256 struct {
	Inner     Uint256
	BasePoint Uint256
}

// FixedU256 writes the 64-byte pair in wire order.
func (e *Encoder) FixedU256(f FixedU256) {
	e.Uint256(f.Inner)
	e.Uint256(f.BasePoint)
}

// FixedU256 reads the 64-byte pair in wire order.
func (d *Decoder) FixedU256() FixedU256 {
	return FixedU256{
		Inner:     d.Uint256(),
		BasePoint: d.Uint256(),
	}
}

// EncodeFixedU256 serializes f into its 64-byte wire form.
func EncodeFixedU256(f FixedU256) []byte {
	e := NewEncoder(FixedU256Span)
	e.FixedU256(f)
	return e.Bytes()
}

// DecodeFixedU256 reads a 64-byte wire form.
func DecodeFixedU256(buf []byte) (FixedU256, error) {
	d := NewDecoder(buf)
	f := d.FixedU256()
	return f, d.Err()
}

// Decimal returns the rational value Inner / BasePoint.
func (f FixedU256) Decimal() (decimal.Decimal, error) {
	if f.BasePoint.IsZero() {
		return decimal.Decimal{}, errZeroBasePoint
	}
	return decimal.NewFromBigInt(f.Inner.Big(), 0).
		Div(decimal.NewFromBigInt(f.BasePoint.Big(), 0)), nil
}
