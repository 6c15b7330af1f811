// Command contractparse converts a single contract document into its
// structured JSON form.
//
// Usage:
//
//	contractparse [-engine rules|llm] [-heuristics cues.yaml] input.pdf output.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgallion1/clauseparse/internal/config"
	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/llm"
	"github.com/dgallion1/clauseparse/internal/parser"
	"github.com/dgallion1/clauseparse/internal/pipeline"
	"github.com/dgallion1/clauseparse/internal/rules"
	"github.com/dgallion1/clauseparse/internal/schema"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	engineFlag := flag.String("engine", "rules", "extraction engine: rules or llm")
	heuristicsFlag := flag.String("heuristics", "", "optional YAML file with extra verb/date cues")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: contractparse [-engine rules|llm] [-heuristics cues.yaml] input.ext output.json\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if err := run(log, *engineFlag, *heuristicsFlag, inputPath, outputPath); err != nil {
		log.Error("parse failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, engineName, heuristicsPath, inputPath, outputPath string) error {
	heur, err := config.LoadHeuristics(heuristicsPath)
	if err != nil {
		return err
	}

	p, err := parser.ForFile(inputPath)
	if err != nil {
		return err
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	pages, err := p.Parse(f, inputPath)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}

	engine := rules.New(heur.VerbCues, heur.DateCues)

	var doc *contract.Contract
	switch {
	case !parser.HasText(pages):
		log.Warn("no extractable text, emitting placeholder")
		doc = contract.Placeholder()
	case engineName == "llm":
		doc, err = runLLM(log, pages, outputPath)
		if errors.Is(err, errUnrepairable) {
			// The raw candidate is already on disk; surface the failure
			// instead of silently substituting the rule engine's output.
			return err
		}
		if err != nil {
			log.Warn("llm extraction failed, falling back to rules", "error", err)
			doc = engine.Parse(pages)
		}
	case engineName == "rules":
		doc = engine.Parse(pages)
	default:
		return fmt.Errorf("unknown engine: %s", engineName)
	}

	if ok, _ := schema.Check(doc); !ok {
		doc = schema.Fix(doc)
	}
	if ok, violations := schema.Check(doc); !ok {
		for _, v := range violations {
			log.Warn("schema violation", "detail", v)
		}
	}

	return writeJSON(outputPath, doc)
}

// runLLM extracts via the Claude API. A structurally unrepairable candidate
// is persisted raw next to the intended output so it can be inspected.
func runLLM(log *slog.Logger, pages []string, outputPath string) (*contract.Contract, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the llm engine")
	}
	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	client := llm.NewClient(apiKey, model)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fullText := strings.Join(pages, "\n\n")

	var candidate map[string]any
	var lastErr error
	for attempt := range pipeline.MaxRetries {
		candidate, lastErr = client.ParseContract(ctx, fullText)
		if lastErr == nil || !pipeline.IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable llm error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(pipeline.Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	return repairCandidate(log, candidate, outputPath)
}

// errUnrepairable marks a model candidate the auto-fixer could not coerce
// into the document shape. By the time it surfaces, the raw candidate has
// been written next to the intended output.
var errUnrepairable = errors.New("unrepairable candidate")

func repairCandidate(log *slog.Logger, candidate map[string]any, outputPath string) (*contract.Contract, error) {
	doc, err := schema.FixRaw(candidate)
	if err != nil {
		rawPath := outputPath + ".raw"
		if werr := writeJSON(rawPath, candidate); werr == nil {
			log.Warn("unrepairable candidate saved", "path", rawPath)
		}
		return nil, fmt.Errorf("%w: %v", errUnrepairable, err)
	}
	return doc, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
