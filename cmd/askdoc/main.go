// askdoc is the document-QA utility: it loads the regulation PDFs, builds
// the grounded prompt state and relays questions from stdin to the hosted
// model, keeping per-run conversation history.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"npo-hub-be/internal/config"
	"npo-hub-be/internal/service"
	"npo-hub-be/pkg/document"
	"npo-hub-be/pkg/llm/gemini"
	"npo-hub-be/pkg/prompt"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	if cfg.Ai.GeminiAPIKey == "" {
		log.Fatal("GOOGLE_GEMINI_API_KEY is required")
	}

	pages, err := loadPages(cfg.Docs.Path, cfg.Docs.Clean)
	if err != nil {
		log.Fatalf("Failed to load documents: %v", err)
	}
	if len(pages) == 0 {
		log.Fatalf("No readable pages found under %s", cfg.Docs.Path)
	}

	builder := prompt.NewBuilder(document.MergeContext(pages), cfg.Ai.Persona)
	provider := gemini.NewGeminiProvider(cfg.Ai.GeminiAPIKey, cfg.Ai.Model, cfg.Ai.Stream)
	assistant := service.NewAssistantService(builder, provider)

	color.Cyan("Loaded %d pages from %s (model: %s)", len(pages), cfg.Docs.Path, cfg.Ai.Model)
	color.Cyan("Ask a question, or type \"exit\" to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := assistant.Ask(context.Background(), question)
		if err != nil {
			color.Red("error: %v", err)
			continue
		}

		color.Green(answer)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed reading input: %v", err)
	}
}

// loadPages accepts either a single PDF file or a directory of PDFs.
func loadPages(path string, clean bool) ([]document.Page, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return document.LoadDirectory(path, clean)
	}
	return document.LoadFile(path, clean)
}
