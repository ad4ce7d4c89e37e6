// Command furigana aligns Japanese words with their readings and
// annotates whole sentences with ruby text.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"furigana/furi"
	"furigana/ingest"
	"furigana/logger"
	"furigana/tokenize"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "furigana",
		Short:         "Align Japanese words with their phonetic readings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCombineCmd(), newAnnotateCmd())
	return root
}

func newCombineCmd() *cobra.Command {
	var (
		furiData string
		asJSON   bool
		asHTML   bool
	)
	cmd := &cobra.Command{
		Use:   "combine <word> <reading>",
		Short: "Produce (furigana, base) pairs for a single word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := furi.Combine(args[0], args[1], furi.FromString(furiData))
			if err != nil {
				return err
			}
			return emitPairs(cmd, pairs, asJSON, asHTML)
		},
	}
	cmd.Flags().StringVar(&furiData, "furi", "", `explicit placement data, e.g. "1:せ;2:じ" or "0-1:あぐら"`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit pairs as JSON")
	cmd.Flags().BoolVar(&asHTML, "html", false, "emit HTML ruby markup")
	return cmd
}

func emitPairs(cmd *cobra.Command, pairs []furi.Pair, asJSON, asHTML bool) error {
	switch {
	case asJSON:
		out, err := json.MarshalIndent(pairs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case asHTML:
		fmt.Fprintln(cmd.OutOrStdout(), furi.RubyHTML(pairs))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), furi.Bracket(pairs))
	}
	return nil
}

func newAnnotateCmd() *cobra.Command {
	var (
		dictName string
		logDir   string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "annotate <text>",
		Short: "Tokenize a sentence and attach ruby annotations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jp, err := tokenize.New(dictName)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			jp.Start(ctx)

			s, err := ingest.Ingest(args[0])
			if err != nil {
				return err
			}

			var ann tokenize.Annotated
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case a := <-tokenize.Chan:
					if a.Sentence.ID != s.ID {
						continue
					}
					ann = a
				}
				break
			}

			if logDir != "" {
				if err := logger.Init(logDir); err != nil {
					return err
				}
				if err := logger.WriteJSON(logDir, s.ID+"_tokens", ann); err != nil {
					slog.Warn("failed to write token log", "error", err)
				}
			}

			if asJSON {
				out, err := json.MarshalIndent(ann, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			for _, tk := range ann.Tokens {
				fmt.Fprint(cmd.OutOrStdout(), tk.RubyText)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&dictName, "dict", "ipa", "tokenizer dictionary: ipa or uni")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "write annotated tokens as JSON into this directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the annotated sentence as JSON")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
