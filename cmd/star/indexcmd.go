package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/starcodec/star/case01"
	"github.com/starcodec/star/case02"
	"github.com/starcodec/star/case03"
	"github.com/starcodec/star/case04"
	"github.com/starcodec/star/dispatch"
	"github.com/starcodec/star/format"
)

func indexCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "build the companion anchor index for a STAR blob",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "star", Required: true},
			&cli.StringFlag{Name: "out", Required: true},
			&cli.UintFlag{Name: "anchor_every", Value: 0, Usage: "0 selects the case's default"},
			&cli.IntFlag{Name: "rows", Value: -1, Usage: "required for case03; case04 reads its row count from the blob and ignores this flag"},
			&cli.Int64Flag{Name: "cadence", Value: 0, Usage: "minutes per row; required for case03/case04"},
		},
		Action: func(c *cli.Context) error {
			return runIndex(logger, c)
		},
	}
}

func runIndex(logger *zap.Logger, c *cli.Context) error {
	star, err := os.ReadFile(c.String("star"))
	if err != nil {
		return usageErrorf("read star: %w", err)
	}

	kase, err := dispatch.Classify(star)
	if err != nil {
		return usageErrorf("classify star: %w", err)
	}

	anchorEvery := uint32(c.Uint("anchor_every"))

	var (
		out         []byte
		sha         [32]byte
		nAnchors    int
		cadenceUsed int64
		nRows       int
	)

	switch kase {
	case format.Case01:
		idx, err := case01.BuildIndex(star, anchorEvery)
		if err != nil {
			return usageErrorf("build index: %w", err)
		}
		out = idx.Bytes()
		nAnchors = len(idx.Anchors)
		nRows = int(idx.NRows)
		anchorEvery = idx.AnchorEvery

	case format.Case02:
		idx, err := case02.BuildIndex(star, anchorEvery)
		if err != nil {
			return usageErrorf("build index: %w", err)
		}
		out = idx.Bytes()
		nAnchors = len(idx.Anchors)
		nRows = int(idx.NRows)
		anchorEvery = idx.AnchorEvery

	case format.Case03:
		rows := c.Int("rows")
		cadence := c.Int64("cadence")
		if rows < 0 || cadence <= 0 {
			return usageErrorf("case03 index requires --rows and --cadence")
		}
		idx := case03.BuildIndex(star, rows, cadence, anchorEvery)
		out = idx.Bytes()
		sha = idx.StarSHA256
		nAnchors = len(idx.Anchors)
		cadenceUsed = cadence
		nRows = rows
		anchorEvery = idx.AnchorEvery

	case format.Case04:
		cadence := c.Int64("cadence")
		if cadence <= 0 {
			return usageErrorf("case04 index requires --cadence")
		}
		idx, err := case04.BuildIndex(star, cadence, anchorEvery)
		if err != nil {
			return usageErrorf("build index: %w", err)
		}
		out = idx.Bytes()
		sha = idx.StarSHA256
		nAnchors = len(idx.Anchors)
		cadenceUsed = cadence
		nRows, _ = case04.RowCount(star)
		anchorEvery = idx.AnchorEvery

	default:
		return usageErrorf("unsupported case for indexing: %s", kase)
	}

	outPath := c.String("out")
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "STAR: %s\n", c.String("star"))
	fmt.Fprintf(w, "Case: %s\n", kase)
	fmt.Fprintf(w, "Rows: %d\n", nRows)
	if cadenceUsed > 0 {
		fmt.Fprintf(w, "Cadence: %d minute(s) per row\n", cadenceUsed)
	}
	fmt.Fprintf(w, "Index written: %s\n", outPath)
	fmt.Fprintf(w, "Anchors: %d (every %d rows, plus a trailing anchor)\n", nAnchors, anchorEvery)
	if sha != ([32]byte{}) {
		fmt.Fprintln(w, "Index binding:")
		fmt.Fprintf(w, "  sha256(star): %s\n", hex.EncodeToString(sha[:]))
	}

	logger.Info("index complete",
		zap.String("case", kase.String()),
		zap.Int("anchors", nAnchors),
	)

	return nil
}
