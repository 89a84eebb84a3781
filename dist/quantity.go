package dist

import (
	"cmp"
	"fmt"
	"reflect"
)

// toFloat converts a quantity to float64 if its underlying kind is numeric.
// Named types such as `type Size int` are accepted.
func toFloat[Q cmp.Ordered](q Q) (float64, error) {
	v := reflect.ValueOf(q)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, fmt.Errorf("%w: %v (%T)", ErrNonNumeric, q, q)
}

// toFloats converts every quantity, failing on the first non-numeric one.
func toFloats[Q cmp.Ordered](qs []Q) ([]float64, error) {
	xs := make([]float64, len(qs))
	for i, q := range qs {
		x, err := toFloat(q)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}
