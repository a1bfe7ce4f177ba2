package encodings

import (
	"math/bits"
)

var _ = EncDec[uint8, uint8](BasicByteObfuscation(0))

// BasicByteObfuscation scrambles single bytes with rotations and xors driven
// by a pepper. It hides bytes from a casual look and nothing more: it is not
// encryption.
type BasicByteObfuscation int

// Encode implements EncDec. It never fails.
func (o BasicByteObfuscation) Encode(d uint8) (uint8, error) {
	return ^(bits.RotateLeft8(d, o.rotation()) ^ 17) ^ o.mask(), nil
}

// Decode implements EncDec. It never fails.
func (o BasicByteObfuscation) Decode(e uint8) (uint8, error) {
	return bits.RotateLeft8(^(e^o.mask())^17, -o.rotation()), nil
}

func (o BasicByteObfuscation) rotation() int {
	return int(o) - 3
}

// mask truncates like a two's complement conversion, so negative peppers work.
func (o BasicByteObfuscation) mask() uint8 {
	return uint8(int(o) % 19)
}
