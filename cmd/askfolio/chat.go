package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/singleflight"

	"askfolio/internal/classify"
	"askfolio/internal/config"
	"askfolio/internal/resolve"
)

// askCmd resolves a single question and exits.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Resolve one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		pipeline := buildPipeline(cfg)
		res := pipeline.Resolve(cmd.Context(), strings.Join(args, " "))
		fmt.Printf("[%s] %s\n", res.Source, res.Text)
		return nil
	},
}

// chatCmd is the in-process adapter: the same pipeline the HTTP server
// runs on, behind an interactive prompt. Submissions are debounced so a
// burst of rapid lines triggers a single resolution, and duplicate
// questions in flight are collapsed.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question-answering session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		pipeline := buildPipeline(cfg)

		ctx, cancel := signalContext()
		defer cancel()

		fmt.Println("askfolio chat. Ask about skills, projects, experience, education, or resume. Ctrl-D to exit.")
		runChat(ctx, pipeline, os.Stdin)
		return nil
	},
}

// runChat reads questions line by line and prints resolved answers.
func runChat(ctx context.Context, pipeline *resolve.Pipeline, in *os.File) {
	debouncer := NewDebouncer(DefaultSubmitDuration)
	defer debouncer.Cancel()
	var flight singleflight.Group

	resolveAndPrint := func(question string) {
		key := classify.Normalize(question)
		v, _, _ := flight.Do(key, func() (interface{}, error) {
			return pipeline.Resolve(ctx, question), nil
		})
		res := v.(resolve.Result)
		fmt.Printf("\n[%s] %s\n\n> ", res.Source, res.Text)
	}

	fmt.Print("> ")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}

		// Only the last line of a rapid burst is resolved.
		question := line
		debouncer.Debounce(func() {
			resolveAndPrint(question)
		})
	}
}
