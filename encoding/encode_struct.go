package encoding

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

// encodeAggregate copies structs and arrays whose memory layout already is
// the C layout: fixed size fields only.
func encodeAggregate(typ reflect2.Type) (handler, structSize) {
	if checkCustom(typ) {
		panic("Unsupported Type")
	}
	totalSize := int(typ.Type1().Size())
	return func(stream Stream, ptr unsafe.Pointer) error {
		_, err := stream.Write(unsafe.Slice((*byte)(ptr), totalSize))
		return err
	}, structSize{totalSize}
}
