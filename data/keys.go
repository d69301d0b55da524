package data

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a violated call contract like a nil dataset or
// an index out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDuplicateKey is returned when a series key is added twice.
var ErrDuplicateKey = errors.New("data: duplicate key")

// ErrLength is returned when parallel inputs differ in length.
var ErrLength = errors.New("data: length mismatch")

// keys keeps an ordered list of unique keys.
type keys struct {
	list  []string
	index map[string]int
}

func (k *keys) len() int         { return len(k.list) }
func (k *keys) key(i int) string { return k.list[i] }

func (k *keys) has(key string) bool {
	_, ok := k.index[key]
	return ok
}

// lookup returns the index of key or -1.
func (k *keys) lookup(key string) int {
	if i, ok := k.index[key]; ok {
		return i
	}
	return -1
}

// intern returns the index of key, appending it if unseen.
func (k *keys) intern(key string) int {
	if i, ok := k.index[key]; ok {
		return i
	}
	if k.index == nil {
		k.index = make(map[string]int)
	}
	k.index[key] = len(k.list)
	k.list = append(k.list, key)
	return len(k.list) - 1
}

// addUnique appends key and fails if it is already present.
func (k *keys) addUnique(key string) error {
	if k.has(key) {
		return fmt.Errorf("%w %q", ErrDuplicateKey, key)
	}
	k.intern(key)
	return nil
}

// checkOrder reports whether xs obey order. NaN values are ignored.
func checkOrder(order Order, n int, x func(int) float64) error {
	if order == Unordered {
		return nil
	}
	prev, seen := 0.0, false
	for i := 0; i < n; i++ {
		v := x(i)
		if v != v {
			continue
		}
		if seen && ((order == Ascending && v < prev) || (order == Descending && v > prev)) {
			return fmt.Errorf("data: x-value %g at item %d violates %s order", v, i, order)
		}
		prev, seen = v, true
	}
	return nil
}
