package encoding

import (
	"iter"
	"reflect"

	"github.com/modern-go/reflect2"
)

func rangeField(typ reflect2.StructType) iter.Seq[reflect2.StructField] {
	return func(yield func(reflect2.StructField) bool) {
		count := typ.NumField()
		for i := 0; i < count; i++ {
			if !yield(typ.Field(i)) {
				break
			}
		}
	}
}

// checkCustom reports whether typ cannot be copied byte for byte.
func checkCustom(typ reflect2.Type) bool {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return false
	case reflect.Array:
		return checkCustom(typ.(reflect2.ArrayType).Elem())
	case reflect.Struct:
		for field := range rangeField(typ.(reflect2.StructType)) {
			if checkCustom(field.Type()) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
