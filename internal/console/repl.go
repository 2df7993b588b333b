package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

type REPLConfig struct {
	Prompt      string
	HistoryFile string
}

// RunREPL reads commands until quit, EOF or ctx is done. A nil in reads
// from the terminal.
func (h *Handler) RunREPL(ctx context.Context, cfg REPLConfig, in io.ReadCloser, out io.Writer) error {
	items := make([]readline.PrefixCompleterInterface, 0, len(h.commands)+2)
	for _, name := range h.CommandNames() {
		items = append(items, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           in,
		Stdout:          out,
		Stderr:          out,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize menu: %w", err)
	}
	defer func() { _ = rl.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = rl.Close() })
	defer stop()

	_, _ = fmt.Fprintln(rl.Stdout(), "Student enrollment and class ranking")
	_, _ = fmt.Fprintln(rl.Stdout(), "Type help for commands, quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			// io.EOF, or the instance was closed on cancellation
			break
		}

		if h.Execute(ctx, line, rl.Stdout()) {
			break
		}
	}

	h.logger.InfoContext(ctx, "menu closed")
	return nil
}
