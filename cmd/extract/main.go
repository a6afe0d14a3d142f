package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/railsdocs/mcp-server/internal/docs"
)

func main() {
	args := os.Args[1:]
	jsonOut := false
	if len(args) > 0 && args[0] == "-json" {
		jsonOut = true
		args = args[1:]
	}
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-json] <docs-file> <group>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s docs/activerecord.html activerecord\n", os.Args[0])
		os.Exit(1)
	}

	docsFile := args[0]
	group := args[1]

	f, err := os.Open(docsFile)
	if err != nil {
		log.Fatalf("Failed to open documentation: %v", err)
	}
	defer f.Close()

	sections, err := docs.Extract(f, group)
	if err != nil {
		log.Fatalf("Failed to extract sections: %v", err)
	}

	// JSON dump for piping into other tooling
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sections); err != nil {
			log.Fatalf("Failed to encode sections: %v", err)
		}
		return
	}

	log.Printf("Rails Docs Section Extractor")
	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("Extracting sections: %s (group: %s)", docsFile, group)

	totalChars := 0
	untitled := 0
	for _, s := range sections {
		totalChars += len(s.Content)
		if s.Title == docs.UntitledSection {
			untitled++
		}
	}
	avgChars := 0
	if len(sections) > 0 {
		avgChars = totalChars / len(sections)
	}

	log.Printf("✓ Extracted %d sections (avg: %d chars, %d untitled)", len(sections), avgChars, untitled)
	log.Printf("")
	for _, s := range sections {
		log.Printf("  %-40s %s", s.Title, s.Path())
	}
	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("✓ Extraction complete!")
}
