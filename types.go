package skiplist

import (
	"cmp"
	"errors"
	"reflect"
)

// Comparator orders two keys. It returns a negative number when a sorts
// before b, zero when they are the same key and a positive number otherwise.
// udata is the opaque value given to New and is passed through untouched.
//
// A comparator must define a strict total order and must not mutate the list.
type Comparator[K any] func(a, b K, udata any) int

// OrderedComparator returns a Comparator backed by cmp.Compare.
func OrderedComparator[K cmp.Ordered]() Comparator[K] {
	return func(a, b K, _ any) int {
		return cmp.Compare(a, b)
	}
}

// Entry is a key/value pair as stored in the list. The list never copies
// what the references point to.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Errors
var (
	// ErrNilKey is returned when a nil pointer, map, slice, func, chan or
	// interface is used as a key.
	ErrNilKey = errors.New("nil key")
	// ErrNilComparator is returned by New when no comparator is supplied.
	ErrNilComparator = errors.New("nil comparator")
	// ErrClosed is returned when a list is used after Close.
	ErrClosed = errors.New("skip list closed")
	// ErrKeyNotFound is returned by Lookup when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
)

func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
