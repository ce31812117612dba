package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

// writeJSON writes v as indented JSON to path, replacing the file atomically.
// A path of "-" prints to stdout.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readInput reads a file argument, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// printSection prints a titled list for the operator, skipping empty ones.
func printSection(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("\n=== %s (%d) ===\n", title, len(lines))
	for _, line := range lines {
		fmt.Println(line)
	}
}

// confirm prompts the operator unless assumeYes is set.
func confirm(l *zap.Logger, prompt string, assumeYes bool) bool {
	if assumeYes {
		l.Info("Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n%s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
