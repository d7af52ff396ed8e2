package utils

// TrueIndices returns the positions of the set entries of a mask.
func TrueIndices(mask []bool) []int {
	indices := make([]int, 0, len(mask))
	for i, ok := range mask {
		if ok {
			indices = append(indices, i)
		}
	}
	return indices
}

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
