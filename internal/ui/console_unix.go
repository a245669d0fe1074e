//go:build !windows

package ui

// Unix terminals take ANSI escapes natively.
func enableVirtualTerminal() bool {
	return true
}
