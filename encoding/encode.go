package encoding

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

type handler = func(Stream, unsafe.Pointer) error

type handlerData struct {
	handler handler
	size    int
}

var encodeProcess sync.Map

// Size returns the wire size of the value val points to.
func Size(val any) int {
	typ, _, err := elem(val)
	if err != nil {
		return 0
	}
	return getMarshalData(typ).size
}

// Encode writes the value val points to in its C layout, in host byte
// order. Only fixed size integers, bools, arrays and structs of them are
// supported.
func Encode(stream Stream, val any) error {
	typ, ptr, err := elem(val)
	if err != nil {
		return err
	}
	return getMarshalData(typ).handler(stream, ptr)
}

func elem(val any) (reflect2.Type, unsafe.Pointer, error) {
	typ := reflect2.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return nil, nil, ErrNotPointer
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return nil, nil, ErrNotPointer
	}
	return typ.(reflect2.PtrType).Elem(), ptr, nil
}

func getMarshalData(typ reflect2.Type) *handlerData {
	key := typ.RType()
	if v, ok := encodeProcess.Load(key); ok {
		return v.(*handlerData)
	}
	marshal, size := encode(typ)
	data := &handlerData{marshal, size.Size()}
	encodeProcess.Store(key, data)
	return data
}

func encode(typ reflect2.Type) (handler, structSize) {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		size := int(typ.Type1().Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Write(unsafe.Slice((*byte)(ptr), size))
			return err
		}, structSize{size}
	case reflect.Array, reflect.Struct:
		return encodeAggregate(typ)
	}
	panic("Unsupported Type")
}
