package generic

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func Filter[T any](s []T, f func(T) bool) []T {
	var res []T
	for _, v := range s {
		if f(v) {
			res = append(res, v)
		}
	}

	return res
}

func MapKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

func MapValues[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}

	return values
}

func SortSlice[T constraints.Ordered](arr []T, reverse bool) {
	sort.Slice(arr, func(i, j int) bool {
		return (arr[i] < arr[j]) != reverse
	})
}
