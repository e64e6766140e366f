package vfs

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// HumanSize formats n bytes with decimal units and two decimals.
func HumanSize(n int) string {
	size := float64(n)
	i := 0
	for size >= 1000 && i < len(sizeUnits)-1 {
		size /= 1000
		i++
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[i])
}
