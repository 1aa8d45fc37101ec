package regops

import (
	"github.com/wnxd/gpuregops/encoding"
)

// OpSize is the wire size of one Op record.
const OpSize = 32

// DecodeOps parses a buffer of back to back Op records.
func DecodeOps(b []byte) ([]Op, error) {
	if len(b)%OpSize != 0 {
		return nil, ErrArgumentInvalid
	}
	ops := make([]Op, len(b)/OpSize)
	stream := encoding.NewBuffer(b)
	for i := range ops {
		if err := encoding.Decode(stream, &ops[i]); err != nil {
			return nil, err
		}
	}
	return ops, nil
}

func EncodeOps(ops []Op) ([]byte, error) {
	stream := encoding.NewBuffer(make([]byte, 0, len(ops)*OpSize))
	for i := range ops {
		if err := encoding.Encode(stream, &ops[i]); err != nil {
			return nil, err
		}
	}
	return stream.Bytes(), nil
}
