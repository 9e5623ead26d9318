// Command ask forwards a text prompt to a locally hosted Ollama chat
// endpoint and prints the model's reply.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"fitcli/internal/config"
	"fitcli/internal/infrastructure"
	"fitcli/internal/llm"
)

func main() {
	var model string
	flag.StringVar(&model, "model", "", "local model to use (e.g. phi3:mini)")
	flag.StringVar(&model, "m", "", "shorthand for -model")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		fallback := config.Default()
		cfg = &fallback
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
	}
	defer infrastructure.CloseLogFile()

	if model == "" {
		model = cfg.LLM.Model
	}

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		// No prompt on the command line: read it from stdin.
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("Failed to read prompt from stdin", "error", err)
			os.Exit(1)
		}
		prompt = strings.TrimSpace(string(raw))
	}
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: ask [-model NAME] PROMPT")
		os.Exit(2)
	}

	opts := []llm.Option{llm.WithModel(model)}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(cfg.LLM.BaseURL))
	}
	if cfg.LLM.Timeout > 0 {
		opts = append(opts, llm.WithTimeout(cfg.LLM.Timeout))
	}
	client := llm.NewClient(opts...)

	ctx := infrastructure.ContextWithTraceID(context.Background())
	reply, err := client.Ask(ctx, prompt)
	if err != nil {
		slog.Error("Chat request failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(reply)
}
