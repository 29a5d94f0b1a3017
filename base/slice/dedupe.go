package slice

// Dedupe returns items without repeated keys, keeping the first occurrence
// and the original order.
func Dedupe[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	res := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, item)
	}
	return res
}

func DedupeStrings[S ~string](items []S) []S {
	return Dedupe(items, func(s S) S { return s })
}
