package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes, blanked when stdout is not a terminal that takes them.
var (
	reset  = "\033[0m"
	cyan   = "\033[36m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !enableVirtualTerminal() {
		reset, cyan, yellow, red, green = "", "", "", "", ""
	}
}

func Info(msg string) {
	fmt.Printf("%s[INFO] %s%s\n", cyan, reset, msg)
}

func Success(msg string) {
	fmt.Printf("%s[SUCCESS] %s%s\n", green, reset, msg)
}

func Warning(msg string) {
	fmt.Printf("%s[WARNING] %s%s\n", yellow, reset, msg)
}

func Error(msg string) {
	fmt.Printf("%s[ERROR] %s%s\n", red, reset, msg)
}
