package value

// DeepEqual reports structural equality between two values.
// Scalars compare within their own variant (Int 1 and Float 1.0 are not
// equal; use Compare for numeric ordering across the two). Lists and
// maps compare element-wise; callables, iterators, and handles compare
// by identity.
func DeepEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok

	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value

	case Int:
		bv, ok := b.(Int)
		return ok && av.Value == bv.Value

	case Float:
		bv, ok := b.(Float)
		return ok && av.Value == bv.Value

	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value

	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !DeepEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true

	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, e := range av.entries {
			other, found := bv.Get(e.Key)
			if !found || !DeepEqual(e.Val, other) {
				return false
			}
		}
		return true

	case *Callable:
		bv, ok := b.(*Callable)
		return ok && av == bv

	case *Iter:
		bv, ok := b.(*Iter)
		return ok && av == bv

	case *Opaque:
		bv, ok := b.(*Opaque)
		return ok && av == bv
	}

	return false
}
