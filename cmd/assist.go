package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/chartloom-cli/internal/assistant"
	"github.com/KaramelBytes/chartloom-cli/internal/utils"
	"github.com/KaramelBytes/chartloom-cli/internal/voice"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Start an interactive visualization session",
	Long: `Starts a REPL-style session. Load a dataset, then describe the chart you
want in plain language and the assistant generates and executes the code.

Commands inside the session:
  load <path>        load a CSV/XLSX/JSON/Parquet dataset
  info               show the profiled dataset summary
  viz <request>      generate and render a chart for the request
  voice [seconds]    record a spoken request and run it (default 5s)
  voice_file <path>  transcribe an audio file and run it
  quit               exit`,
	RunE: runAssist,
}

func init() {
	rootCmd.AddCommand(assistCmd)
}

func runAssist(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}
	a := assistant.New(cfg, newAIClient())

	ctx := cmd.Context()

	// Ctrl-C ends the session with the farewell instead of a bare kill.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	fmt.Println("Welcome to Chartloom! Type 'quit' to exit.")
	fmt.Println("Load a dataset with: load <path>")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, rest := splitCommand(line)
		switch verb {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return nil
		case "load":
			doLoad(a, rest)
		case "info":
			fmt.Println(a.Info())
		case "viz":
			if rest == "" {
				fmt.Println("Usage: viz <request>")
				continue
			}
			doVisualize(ctx, a, rest)
		case "voice":
			doVoice(ctx, a, rest)
		case "voice_file":
			if rest == "" {
				fmt.Println("Usage: voice_file <path>")
				continue
			}
			doVoiceFile(ctx, a, rest)
		default:
			fmt.Println("Unknown command. Type 'quit' to exit.")
		}
	}
	return scanner.Err()
}

func splitCommand(line string) (verb, rest string) {
	parts := strings.SplitN(line, " ", 2)
	verb = strings.ToLower(parts[0])
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return verb, rest
}

func doLoad(a *assistant.Assistant, path string) {
	if path == "" {
		fmt.Println("Usage: load <path>")
		return
	}
	rows, cols, err := a.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		return
	}
	fmt.Printf("✓ Loaded dataset: %d rows, %d columns\n", rows, cols)
	if debug {
		fmt.Printf("  context: ~%d tokens\n", utils.CountTokens(a.Info()))
	}
}

func doVisualize(ctx context.Context, a *assistant.Assistant, request string) {
	fmt.Println("Generating visualization code...")
	code, err := a.Generate(ctx, request)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		return
	}
	if debug {
		fmt.Println("--- generated code ---")
		fmt.Println(code)
		fmt.Println("----------------------")
	}
	fmt.Println("Executing visualization...")
	chartPath, err := a.Execute(code)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		return
	}
	fmt.Println("✓ Visualization created successfully!")
	if chartPath != "" {
		fmt.Println("  saved to:", chartPath)
	}
}

func doVoice(ctx context.Context, a *assistant.Assistant, arg string) {
	seconds := voice.DefaultSeconds
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("Invalid duration. Using default %d seconds.\n", voice.DefaultSeconds)
		} else {
			seconds = voice.ClampSeconds(n)
		}
	}
	fmt.Printf("Recording for %d seconds...\n", seconds)
	text, err := a.RecordAndTranscribe(ctx, seconds)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		return
	}
	runTranscript(ctx, a, text)
}

func doVoiceFile(ctx context.Context, a *assistant.Assistant, path string) {
	text, err := a.Transcribe(ctx, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		return
	}
	runTranscript(ctx, a, text)
}

func runTranscript(ctx context.Context, a *assistant.Assistant, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		fmt.Println("No speech detected. Please try again.")
		return
	}
	fmt.Printf("Heard: %q\n", text)
	doVisualize(ctx, a, text)
}
