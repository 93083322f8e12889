//go:build !unix

package terminal

func columns(int) (int, bool) {
	return 0, false
}
