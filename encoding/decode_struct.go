package encoding

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

func decodeAggregate(typ reflect2.Type) (handler, structSize) {
	if checkCustom(typ) {
		panic("Unsupported Type")
	}
	totalSize := int(typ.Type1().Size())
	return func(stream Stream, ptr unsafe.Pointer) error {
		_, err := stream.Read(unsafe.Slice((*byte)(ptr), totalSize))
		return err
	}, structSize{totalSize}
}
