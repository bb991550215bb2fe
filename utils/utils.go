package utils

import (
	"errors"
	"fmt"
	"strings"
)

type SliceTypes interface {
	~string | ~int
}

// Checks if the given target is in the given arr and returns a boolean
func SliceContains[T SliceTypes](arr []T, target T) bool {
	for _, el := range arr {
		if el == target {
			return true
		}
	}
	return false
}

// Removes duplicates from the given slice while preserving the
// order of first occurrence.
func RemoveSliceDuplicates[T SliceTypes](s []T) []T {
	var result []T
	seen := make(map[T]struct{})
	for _, v := range s {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// Checks if the slice of string contains the target str. Otherwise, returns an error.
func ValidateStrArgs(str string, slice, errMsgs []string) (string, error) {
	if SliceContains(slice, str) {
		return str, nil
	}

	var msgBody error
	if len(errMsgs) > 0 {
		msgBody = errors.New(strings.Join(errMsgs, "\n"))
	} else {
		msgBody = fmt.Errorf("input error, got: %s", str)
	}
	return "", fmt.Errorf(
		"%w\nExpecting one of the following: %s",
		msgBody,
		strings.TrimSpace(strings.Join(slice, ", ")),
	)
}
