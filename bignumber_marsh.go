// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of BigNumbers.

package bignumber

import (
	"encoding/binary"
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const bignumberGobVersion byte = 1

// maxGobWords bounds the precision, in words, that GobDecode gives a
// receiver of precision 0.
const maxGobWords = 1 << 20

// GobEncode implements the gob.GobEncoder interface.
// The BigNumber value and its precision are marshaled.
func (x *BigNumber) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// only the significant words are encoded; the precision restores the
	// leading zeros
	m := x.mant.norm()
	sz := 1 + 1 + 4 + 8 + len(m)*_S // version + neg + prec words + exp + mant
	buf := make([]byte, sz)

	buf[0] = bignumberGobVersion
	if x.neg {
		buf[1] = 1
	}
	binary.BigEndian.PutUint32(buf[2:], uint32(len(x.mant)))
	binary.BigEndian.PutUint64(buf[6:], uint64(x.exp))
	copy(buf[14:], m.bytes())

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// The result is truncated to the precision of z unless z's precision is 0,
// in which case z takes the decoded precision and value exactly. Decoding
// into a zero precision receiver fails for precisions above 2**26 bits.
func (z *BigNumber) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = BigNumber{}
		return nil
	}

	if buf[0] != bignumberGobVersion {
		return fmt.Errorf("BigNumber.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 14 || (len(buf)-14)%_S != 0 {
		return fmt.Errorf("BigNumber.GobDecode: invalid encoding length %d", len(buf))
	}

	n := int(binary.BigEndian.Uint32(buf[2:]))
	exp := int64(binary.BigEndian.Uint64(buf[6:]))
	m := mant(nil).setBytes(buf[14:])
	if len(m) > n {
		return fmt.Errorf("BigNumber.GobDecode: %d mantissa words exceed precision of %d words", len(m), n)
	}

	if len(z.mant) != 0 {
		n = len(z.mant)
	} else if n > maxGobWords {
		return fmt.Errorf("BigNumber.GobDecode: precision of %d words exceeds %d", n, maxGobWords)
	}
	z.setMant(m, exp, buf[1]&1 != 0, n)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the BigNumber value is marshaled (in full precision), the precision
// is ignored.
func (x *BigNumber) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	var buf []byte
	return x.Append(buf, -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is truncated per the precision of z. If z's precision is 0,
// it is changed to fit the integer digits plus one word of fraction.
func (z *BigNumber) UnmarshalText(text []byte) error {
	_, err := z.Parse(string(text))
	if err != nil {
		err = fmt.Errorf("bignumber: cannot unmarshal %q into a *bignumber.BigNumber (%w)", text, err)
	}
	return err
}
