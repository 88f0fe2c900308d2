package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	suffixtree "github.com/quintinm-dev/suffix-tree"
	"github.com/quintinm-dev/suffix-tree/internal/viz"
)

var (
	verbose       bool
	queries       []string
	dotPath       string
	alphabetCheck string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suffixtree WORD",
		Short: "Build a compressed suffix tree and answer substring queries",
		Args:  cobra.ExactArgs(1),
		RunE:  runRoot,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log construction progress")
	cmd.Flags().StringArrayVar(&queries, "find", nil, "query to test for substring membership (repeatable)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write a Graphviz DOT rendering of the tree to this path")
	cmd.Flags().StringVar(&alphabetCheck, "alphabet-check", "",
		"reject the word if it contains a symbol outside this set (e.g. \"abcdefghijklmnopqrstuvwxyz\")")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	word := args[0]

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if alphabetCheck != "" {
		if bad, pos, ok := firstOutsideAlphabet(word, alphabetCheck); !ok {
			return fmt.Errorf("symbol %q at position %d is outside --alphabet-check set %q", bad, pos, alphabetCheck)
		}
	}

	logger.Debug("building tree", "word", word, "length", len(word))

	trace := func(ev suffixtree.TraceEvent) {
		logger.Debug("extension", "phase", ev.Phase, "extension", ev.Extension, "rule", ev.Rule)
	}
	tree := suffixtree.NewWithTrace(word, trace)
	logger.Debug("built tree", "nodes", tree.NodeCount())

	if verbose {
		fmt.Fprintln(cmd.OutOrStdout(), viz.Pretty(tree.Traverse()))
	}

	for _, q := range queries {
		logger.Debug("running query", "query", q)
		fmt.Fprintf(cmd.OutOrStdout(), "%q: %v\n", q, tree.Find(q))
	}

	if dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(viz.DOT(tree.Traverse())), 0o644); err != nil {
			return fmt.Errorf("writing dot file: %w", err)
		}
		logger.Debug("wrote dot file", "path", dotPath)
	}

	return nil
}

// firstOutsideAlphabet reports the first symbol of word (and its
// position) that does not appear in alphabet. ok is false when such a
// symbol exists.
func firstOutsideAlphabet(word, alphabet string) (sym string, pos int, ok bool) {
	allowed := make(map[byte]bool, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		allowed[alphabet[i]] = true
	}
	for i := 0; i < len(word); i++ {
		if !allowed[word[i]] {
			return string(word[i]), i, false
		}
	}
	return "", -1, true
}
