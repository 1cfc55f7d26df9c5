// Command txlens decodes a raw hex-encoded Bitcoin transaction and prints
// a structured report.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txlens7000/internal/report"
	"github.com/goodnatureofminers/txlens7000/internal/wire"
	"github.com/goodnatureofminers/txlens7000/pkg/workerpool"
)

var config struct {
	Tx      string `short:"t" long:"tx" env:"TXLENS_TX" description:"hex-encoded transaction"`
	File    string `short:"f" long:"file" env:"TXLENS_FILE" description:"file containing the hex-encoded transaction"`
	JSON    bool   `long:"json" description:"emit the report as JSON"`
	Batch   bool   `long:"batch" description:"treat the file as one hex transaction per line"`
	Workers int    `long:"workers" env:"TXLENS_WORKERS" default:"4" description:"batch decode workers"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	switch {
	case config.Tx != "" && config.File != "":
		logger.Fatal("--tx and --file are mutually exclusive")
	case config.Tx == "" && config.File == "":
		logger.Fatal("provide either --tx <HEX> or --file <FILE>")
	case config.Batch && config.File == "":
		logger.Fatal("--batch requires --file")
	}

	if config.Batch {
		if err := runBatch(ctx, logger); err != nil {
			logger.Fatal("Batch decode failed", zap.Error(err))
		}
		return
	}

	txHex := config.Tx
	if config.File != "" {
		raw, err := os.ReadFile(config.File)
		if err != nil {
			logger.Fatal("Failed to read file", zap.String("file", config.File), zap.Error(err))
		}
		txHex = string(raw)
	}

	if err := decodeAndRender(txHex); err != nil {
		logger.Fatal("Decode failed", zap.Error(err))
	}
}

func decodeAndRender(txHex string) error {
	tx, err := wire.DecodeHex(txHex)
	if err != nil {
		return err
	}
	rep, err := report.Build(tx)
	if err != nil {
		return err
	}
	if config.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return report.Render(os.Stdout, rep)
}

// runBatch decodes one transaction per non-empty line concurrently. Lines
// that fail to decode are reported individually without stopping the rest.
func runBatch(ctx context.Context, logger *zap.Logger) error {
	f, err := os.Open(config.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", config.File, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 16<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", config.File, err)
	}

	results, err := workerpool.Map(ctx, config.Workers, lines, func(_ context.Context, line string) (*report.Report, error) {
		tx, err := wire.DecodeHex(line)
		if err != nil {
			return nil, err
		}
		return report.Build(tx)
	})
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("Line not decoded", zap.Int("line", i+1), zap.Error(res.Err))
			continue
		}
		if config.JSON {
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(res.Value); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("\n=== transaction %d (line %d) ===\n", i+1, i+1)
		if err := report.Render(os.Stdout, res.Value); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d transactions failed to decode", failed, len(lines))
	}
	return nil
}
