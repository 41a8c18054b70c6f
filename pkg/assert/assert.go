package assert

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
)

func runAssert(msg string, args ...any) {
	fmt.Fprintln(os.Stderr, "ASSERT")
	fmt.Fprintf(os.Stderr, "   msg=%s\n", msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(os.Stderr, "   %v=%v\n", args[i], args[i+1])
	}
	fmt.Fprintln(os.Stderr, string(debug.Stack()))
	os.Exit(1)
}

func Assert(truth bool, msg string, data ...any) {
	if !truth {
		runAssert(msg, data...)
	}
}

func Never(msg string, data ...any) {
	Assert(false, msg, data...)
}

func NoError(err error, msg string, data ...any) {
	if err != nil {
		slog.Error("NoError#error encountered", "error", err)
		runAssert(msg, data...)
	}
}
