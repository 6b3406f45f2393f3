package native

import (
	"github.com/vela-lang/vela/pkg/errors"
	"github.com/vela-lang/vela/pkg/value"
)

// arrayModule provides the sequence operations. Mutating operations
// (add_element, remove_element_at, clear) act on the shared list value
// in place, so every holder of the same list observes them.
func arrayModule(_ *Context) (Module, error) {
	return Module{
		"length":            {Name: "array.length", Execute: arrayLength},
		"is_empty":          {Name: "array.is_empty", Execute: arrayIsEmpty},
		"get_element_at":    {Name: "array.get_element_at", Execute: arrayGetElementAt},
		"add_element":       {Name: "array.add_element", Execute: arrayAddElement},
		"remove_element_at": {Name: "array.remove_element_at", Execute: arrayRemoveElementAt},
		"clear":             {Name: "array.clear", Execute: arrayClear},
		"contains":          {Name: "array.contains", Execute: arrayContains},
		"index_of":          {Name: "array.index_of", Execute: arrayIndexOf},
		"sort":              {Name: "array.sort", Execute: arraySort},
	}, nil
}

func arrayLength(args []value.Value) (value.Value, error) {
	if err := argCount("array.length", args, 1); err != nil {
		return nil, err
	}
	list, err := argList("array.length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewInt(int32(len(list.Items))), nil
}

func arrayIsEmpty(args []value.Value) (value.Value, error) {
	if err := argCount("array.is_empty", args, 1); err != nil {
		return nil, err
	}
	list, err := argList("array.is_empty", args, 0)
	if err != nil {
		return nil, err
	}
	return value.NewBool(len(list.Items) == 0), nil
}

func arrayGetElementAt(args []value.Value) (value.Value, error) {
	if err := argCount("array.get_element_at", args, 2); err != nil {
		return nil, err
	}
	list, err := argList("array.get_element_at", args, 0)
	if err != nil {
		return nil, err
	}
	index, err := argInt("array.get_element_at", args, 1)
	if err != nil {
		return nil, err
	}
	if index < 0 || int(index) >= len(list.Items) {
		return nil, errors.NewIndexError("index %d out of bounds for length %d", index, len(list.Items))
	}
	return list.Items[index], nil
}

func arrayAddElement(args []value.Value) (value.Value, error) {
	if err := argCount("array.add_element", args, 2); err != nil {
		return nil, err
	}
	list, err := argList("array.add_element", args, 0)
	if err != nil {
		return nil, err
	}
	list.Items = append(list.Items, args[1])
	return list, nil
}

func arrayRemoveElementAt(args []value.Value) (value.Value, error) {
	if err := argCount("array.remove_element_at", args, 2); err != nil {
		return nil, err
	}
	list, err := argList("array.remove_element_at", args, 0)
	if err != nil {
		return nil, err
	}
	index, err := argInt("array.remove_element_at", args, 1)
	if err != nil {
		return nil, err
	}
	if index < 0 || int(index) >= len(list.Items) {
		return nil, errors.NewIndexError("index %d out of bounds for length %d", index, len(list.Items))
	}
	removed := list.Items[index]
	list.Items = append(list.Items[:index], list.Items[index+1:]...)
	return removed, nil
}

func arrayClear(args []value.Value) (value.Value, error) {
	if err := argCount("array.clear", args, 1); err != nil {
		return nil, err
	}
	list, err := argList("array.clear", args, 0)
	if err != nil {
		return nil, err
	}
	list.Items = nil
	return value.NewNull(), nil
}

func arrayContains(args []value.Value) (value.Value, error) {
	if err := argCount("array.contains", args, 2); err != nil {
		return nil, err
	}
	list, err := argList("array.contains", args, 0)
	if err != nil {
		return nil, err
	}
	for _, item := range list.Items {
		if value.DeepEqual(item, args[1]) {
			return value.NewBool(true), nil
		}
	}
	return value.NewBool(false), nil
}

func arrayIndexOf(args []value.Value) (value.Value, error) {
	if err := argCount("array.index_of", args, 2); err != nil {
		return nil, err
	}
	list, err := argList("array.index_of", args, 0)
	if err != nil {
		return nil, err
	}
	for i, item := range list.Items {
		if value.DeepEqual(item, args[1]) {
			return value.NewInt(int32(i)), nil
		}
	}
	return value.NewInt(-1), nil
}

// arraySort returns a new sorted list; the input is left unmodified.
// The sort is a partition-exchange sort over a copy (last-element
// pivot, Lomuto partition) and is not stable. An element lacking the
// comparison capability aborts the whole sort with a TypeError before
// any partial result is visible.
func arraySort(args []value.Value) (value.Value, error) {
	if err := argCount("array.sort", args, 1); err != nil {
		return nil, err
	}
	list, err := argList("array.sort", args, 0)
	if err != nil {
		return nil, err
	}

	sorted := make([]value.Value, len(list.Items))
	copy(sorted, list.Items)

	for _, item := range sorted {
		if _, ok := item.(value.Comparable); !ok {
			return nil, errors.NewTypeError("array.sort: value of type %s is not comparable", value.TypeName(item))
		}
	}

	if err := quicksort(sorted, 0, len(sorted)-1); err != nil {
		return nil, err
	}
	return value.NewList(sorted), nil
}

func quicksort(items []value.Value, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	p, err := partition(items, lo, hi)
	if err != nil {
		return err
	}
	if err := quicksort(items, lo, p-1); err != nil {
		return err
	}
	return quicksort(items, p+1, hi)
}

// partition runs the Lomuto scheme with items[hi] as the pivot and
// returns its final index.
func partition(items []value.Value, lo, hi int) (int, error) {
	pivot := items[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		cmp, err := value.Compare(items[j], pivot)
		if err != nil {
			return 0, err
		}
		if cmp <= 0 {
			i++
			items[i], items[j] = items[j], items[i]
		}
	}
	items[i+1], items[hi] = items[hi], items[i+1]
	return i + 1, nil
}
