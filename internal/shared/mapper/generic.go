// Package mapper holds small generic slice helpers used by persistence and DTO mappers.
package mapper

import "fmt"

// MapSlice applies mapFunc to each element. Returns nil for a nil input.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithID maps items with a fallible function, skipping nil inputs.
// The failing item's ID is included in the returned error.
func MapSliceWithID[T any, R any, ID any](items []*T, mapFunc func(*T) (R, error), getID func(*T) ID) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}

// IndexBy builds a lookup keyed by key(item). Later duplicates win.
func IndexBy[K comparable, T any](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}

// Unique returns keys in first-seen order with duplicates removed.
func Unique[K comparable](keys []K) []K {
	seen := make(map[K]struct{}, len(keys))
	result := make([]K, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}
	return result
}
