package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/umstad/quizgen/internal/builder"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/contextsplit"
	"github.com/umstad/quizgen/internal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	var (
		envName   = flag.String("env", "local", "Environment to run (local, prod, or custom)")
		file      = flag.String("file", "", "Knowledge file, passages separated by the split delimiter")
		batchSize = flag.Int("batch", 50, "Passages embedded and upserted per request")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}
	if *batchSize < 1 {
		log.Fatal("-batch must be positive")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read knowledge file: %v", err)
	}

	passages := nonEmpty(contextsplit.New(string(raw), 0).Segments())
	if len(passages) == 0 {
		color.Yellow("No passages found in %s", *file)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := builder.BuildPipeline(ctx, *envName)
	if err != nil {
		log.Fatal("Failed to build pipeline:", err)
	}
	defer pipeline.Close()
	ctx = logger.ToContext(ctx, pipeline.Logger)

	if err := index(ctx, pipeline, passages, *batchSize); err != nil {
		pipeline.Logger.Error("indexing failed", zap.Error(err))
		color.Red("Indexing failed: %v", err)
		os.Exit(1)
	}

	color.Green("✓ Indexed %d passages", len(passages))
}

func index(ctx context.Context, p *builder.Pipeline, passages []string, batchSize int) error {
	bar := progressbar.NewOptions(len(passages),
		progressbar.OptionSetDescription(color.BlueString("Indexing passages")),
		progressbar.OptionSetItsString("passages"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	defer func() {
		_ = bar.Finish()
		fmt.Println()
	}()

	for start := 0; start < len(passages); start += batchSize {
		end := min(start+batchSize, len(passages))
		texts := passages[start:end]

		vectors, err := p.Embedder.EmbedMany(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed passages %d-%d: %w", start, end, err)
		}

		batch := make([]entity.KnowledgePassage, len(texts))
		for i, text := range texts {
			batch[i] = entity.KnowledgePassage{
				ID:     passageID(text),
				Text:   text,
				Vector: vectors[i],
			}
		}

		if err := p.Index.Upsert(ctx, batch); err != nil {
			return fmt.Errorf("upsert passages %d-%d: %w", start, end, err)
		}
		_ = bar.Add(len(texts))
	}

	return nil
}

// passageID is stable per text so re-indexing a file overwrites its passages.
func passageID(text string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(text)).String()
}

func nonEmpty(segments []string) []string {
	out := segments[:0]
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
