package display

import (
	"fmt"
	"os"

	"github.com/backmassage/frameseq/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  __
 / _|_ __ __ _ _ __ ___   ___  ___  ___  __ _
| |_| '__/ _`+"`"+` | '_ `+"`"+` _ \ / _ \/ __|/ _ \/ _`+"`"+` |
|  _| | | (_| | | | | | |  __/\__ \  __/ (_| |
|_| |_|  \__,_|_| |_| |_|\___||___/\___|\__, |
                                           |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
