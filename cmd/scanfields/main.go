package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cardvault/cardvault/internal/extract"
)

// scanfields reads OCR text from a file (or stdin when no argument or "-" is
// given) and prints the extracted contact fields as JSON.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		raw []byte
		err error
	)
	switch {
	case len(os.Args) > 2:
		logger.Error("usage", "cmd", "scanfields [file]")
		os.Exit(2)
	case len(os.Args) == 2 && os.Args[1] != "-":
		raw, err = os.ReadFile(os.Args[1])
	default:
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	contact := extract.Extract(string(raw))

	out, err := json.MarshalIndent(contact, "", "  ")
	if err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if contact.Empty() {
		logger.Warn("no fields detected")
	}
}
