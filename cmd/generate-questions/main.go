package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/umstad/quizgen/internal/builder"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/logger"
	"github.com/umstad/quizgen/internal/usecase/generation"
)

func main() {
	var (
		envName = flag.String("env", "local", "Environment to run (local, prod, or custom)")
		count   = flag.Int("n", 10, "Number of questions to generate")
		file    = flag.String("file", "", "Context file, informations separated by the split delimiter")
		overlap = flag.Int("overlap", -1, "Extra segments per window, negative uses the configured default")
		verbose = flag.Bool("verbose", false, "Print every generated question")
		out     = flag.String("out", "", "Write the batch result as JSON to this file")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read context file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := builder.BuildPipeline(ctx, *envName)
	if err != nil {
		log.Fatal("Failed to build generation pipeline:", err)
	}
	defer pipeline.Close()
	ctx = logger.ToContext(ctx, pipeline.Logger)

	req := generation.BatchRequest{
		NumberOfQuestions: *count,
		Context:           string(raw),
		Verbose:           *verbose,
	}
	if *overlap >= 0 {
		req.Overlap = overlap
	}

	bar := getProgressBar(*count, "Generating questions")
	req.OnItem = func(index int, question *entity.GeneratedQuestion, err error) {
		_ = bar.Add(1)
		if err != nil {
			bar.Describe(color.RedString("Question %d failed", index+1))
			return
		}
		bar.Describe(color.BlueString("Question %d ready", index+1))
		if *verbose {
			fmt.Println()
			printQuestion(index, question)
		}
	}

	result, err := pipeline.Generation.GenerateBatch(ctx, req)
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		color.Red("Generation failed: %v", err)
		os.Exit(1)
	}

	printSummary(result)

	if *out != "" {
		if err := writeResult(*out, result); err != nil {
			color.Red("Failed to write %s: %v", *out, err)
			os.Exit(1)
		}
		color.Green("✓ Result written to %s", *out)
	}

	if result.Partial() {
		os.Exit(2)
	}
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("questions"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func printQuestion(index int, q *entity.GeneratedQuestion) {
	color.Cyan("Question %d", index+1)
	fmt.Println(q.Question)
	color.Green("%s", q.CorrectAnswer)
	fmt.Println()
}

func printSummary(result *entity.BatchResult) {
	color.Green("✓ Generated %d questions", len(result.Questions))
	if result.Partial() {
		color.Yellow("%d questions failed", len(result.Failures))
		for _, f := range result.Failures {
			color.Red("  #%d [%s] %s", f.Index+1, f.Stage, f.Reason)
		}
	}

	s := result.Stats
	fmt.Printf("Input tokens:  %d (%.6f$)\n", s.InputTokens, s.CostInput)
	fmt.Printf("Output tokens: %d (%.6f$)\n", s.OutputTokens, s.CostOutput)
	color.Cyan("Total cost:    %.6f$", s.TotalCost)
}

func writeResult(path string, result *entity.BatchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
