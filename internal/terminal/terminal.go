// Package terminal queries properties of the terminal that the output is
// written to.
package terminal

import "os"

// Columns returns the number of columns of the terminal connected to the
// file. The second return value is false if the file is not a terminal or
// the size can not be determined.
func Columns(f *os.File) (int, bool) {
	if f == nil {
		return 0, false
	}
	return columns(int(f.Fd()))
}
