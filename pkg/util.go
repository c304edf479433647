package pkg

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	if !isDir && stat.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// ParseID parses a path/query id value. Ids are client supplied and never negative.
func ParseID(idStr string) (int64, error) {
	if idStr == "" {
		return 0, fmt.Errorf("id empty")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id NaN: %w", err)
	}
	if id < 0 {
		return 0, fmt.Errorf("id negative: %d", id)
	}
	return id, nil
}
