package encoding

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

var decodeProcess sync.Map

// Decode reads the layout written by Encode into the value val points to.
func Decode(stream Stream, val any) error {
	typ, ptr, err := elem(val)
	if err != nil {
		return err
	}
	return getUnmarshalData(typ).handler(stream, ptr)
}

func getUnmarshalData(typ reflect2.Type) *handlerData {
	key := typ.RType()
	if v, ok := decodeProcess.Load(key); ok {
		return v.(*handlerData)
	}
	unmarshal, size := decode(typ)
	data := &handlerData{unmarshal, size.Size()}
	decodeProcess.Store(key, data)
	return data
}

func decode(typ reflect2.Type) (handler, structSize) {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		size := int(typ.Type1().Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), size))
			return err
		}, structSize{size}
	case reflect.Array, reflect.Struct:
		return decodeAggregate(typ)
	}
	panic("Unsupported Type")
}
