package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// LineReader reads one line of input after printing a prompt
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Console is a LineReader with line editing and persistent input history
type Console struct {
	line        *liner.State
	historyFile string
}

// NewConsole opens the terminal for line editing. An empty historyFile disables history persistence.
func NewConsole(historyFile string) *Console {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &Console{
		line:        line,
		historyFile: historyFile,
	}
	c.loadHistory()
	return c
}

// Prompt reads a line and adds non-empty input to the history
func (c *Console) Prompt(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal
func (c *Console) Close() error {
	c.saveHistory()
	return c.line.Close()
}

func (c *Console) loadHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

func (c *Console) saveHistory() {
	if c.historyFile == "" {
		return
	}
	if dir := filepath.Dir(c.historyFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return
		}
	}

	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}
