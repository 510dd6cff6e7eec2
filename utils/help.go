package utils

import (
	"fmt"
	"io"
)

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [timeout]\n", APP_NAME)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  timeout   seconds a command may run before it is killed (0 = no limit)")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %-18s path to a JSONC config file\n", CONFIG_ENV)
	fmt.Fprintf(w, "  %-18s log level (trace, debug, info, warn, error)\n", LOG_LEVEL_ENV)
}
