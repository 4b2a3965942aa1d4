// Package layout implements the fixed-width little-endian primitives every
// account and instruction layout in this repository is built from. The wire
// format is the flat concatenation of leaf fields in declaration order, with
// no padding or length prefixes at any nesting level.
package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// Spans of the primitive fields, in bytes.
const (
	Uint8Span  = 1
	Uint32Span = 4
	Uint64Span = 8
	Int64Span  = 8
	BlobSpan   = 32
)

var (
	// ErrShortBuffer reports a buffer shorter than the span of the
	// requested layout.
	ErrShortBuffer = errors.New("layout: buffer too short")
	// ErrOverflow reports a value that does not fit the target integer
	// width at encode time.
	ErrOverflow = errors.New("layout: value does not fit target width")
)

// Uint256 is a 256-bit little-endian unsigned integer. It shares its byte
// width with solana.PublicKey but is a separate type on purpose: an account
// identifier is never arithmetic, and a 256-bit integer never names storage.
type Uint256 [BlobSpan]byte

// Big returns the value as a big integer.
func (u Uint256) Big() *big.Int {
	// big.Int wants big-endian bytes.
	var be [BlobSpan]byte
	for i := 0; i < BlobSpan; i++ {
		be[i] = u[BlobSpan-1-i]
	}
	return new(big.Int).SetBytes(be[:])
}

// Uint256FromBig converts x, failing with ErrOverflow when x is negative or
// wider than 256 bits.
func Uint256FromBig(x *big.Int) (Uint256, error) {
	var u Uint256
	if x.Sign() < 0 || x.BitLen() > 256 {
		return u, fmt.Errorf("%w: %s as uint256", ErrOverflow, x)
	}
	be := x.Bytes()
	for i, b := range be {
		u[len(be)-1-i] = b
	}
	return u, nil
}

// Uint256FromUint64 widens v.
func Uint256FromUint64(v uint64) Uint256 {
	var u Uint256
	binary.LittleEndian.PutUint64(u[:Uint64Span], v)
	return u
}

// IsZero reports whether every byte is zero.
func (u Uint256) IsZero() bool {
	return u == Uint256{}
}

// Decoder reads primitives out of a buffer in declaration order. The first
// short read is sticky: every later read returns the zero value and Err
// reports ErrShortBuffer.
type Decoder struct {
	buf []byte
	off int
	err error
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Err returns the first error hit while decoding, or nil.
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) take(span int) []byte {
	if d.err != nil {
		return nil
	}
	if len(d.buf)-d.off < span {
		d.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortBuffer, span, d.off, len(d.buf)-d.off)
		return nil
	}
	out := d.buf[d.off : d.off+span]
	d.off += span
	return out
}

func (d *Decoder) Uint8() uint8 {
	b := d.take(Uint8Span)
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool decodes a one-byte flag. Any non-zero byte reads as true.
func (d *Decoder) Bool() bool {
	return d.Uint8() != 0
}

func (d *Decoder) Uint32() uint32 {
	b := d.take(Uint32Span)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *Decoder) Uint64() uint64 {
	b := d.take(Uint64Span)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *Decoder) Int64() int64 {
	return int64(d.Uint64())
}

func (d *Decoder) PublicKey() solana.PublicKey {
	var key solana.PublicKey
	b := d.take(BlobSpan)
	if b == nil {
		return key
	}
	copy(key[:], b)
	return key
}

func (d *Decoder) Uint256() Uint256 {
	var u Uint256
	b := d.take(BlobSpan)
	if b == nil {
		return u
	}
	copy(u[:], b)
	return u
}

// Encoder writes primitives into a pre-sized buffer in declaration order.
// The buffer must be allocated to the exact span of the layout being written;
// Encoder panics on overrun since a mis-sized buffer is a programming error,
// not an input error.
type Encoder struct {
	buf []byte
	off int
}

func NewEncoder(span int) *Encoder {
	return &Encoder{buf: make([]byte, span)}
}

// Bytes returns the encoded buffer. It panics unless the buffer has been
// written in full, so a composite encoder cannot silently emit a partial or
// trimmed layout.
func (e *Encoder) Bytes() []byte {
	if e.off != len(e.buf) {
		panic(fmt.Sprintf("layout: encoded %d of %d bytes", e.off, len(e.buf)))
	}
	return e.buf
}

func (e *Encoder) next(span int) []byte {
	out := e.buf[e.off : e.off+span]
	e.off += span
	return out
}

func (e *Encoder) Uint8(v uint8) {
	e.next(Uint8Span)[0] = v
}

func (e *Encoder) Bool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	e.Uint8(b)
}

func (e *Encoder) Uint32(v uint32) {
	binary.LittleEndian.PutUint32(e.next(Uint32Span), v)
}

func (e *Encoder) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(e.next(Uint64Span), v)
}

func (e *Encoder) Int64(v int64) {
	e.Uint64(uint64(v))
}

func (e *Encoder) PublicKey(key solana.PublicKey) {
	copy(e.next(BlobSpan), key[:])
}

func (e *Encoder) Uint256(u Uint256) {
	copy(e.next(BlobSpan), u[:])
}
