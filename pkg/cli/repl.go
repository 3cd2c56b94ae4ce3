package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/c-bata/go-prompt"
	"github.com/gofrs/flock"
	"github.com/spy16/slurp/reader"
	"github.com/vito/typeof/pkg/ioctx"
	"github.com/vito/typeof/pkg/typeof"
	"github.com/vito/typeof/pkg/zapctx"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const promptStr = "=> "
const wordsep = "()[]{} "

const complColor = prompt.Green
const textColor = prompt.White

const historyFile = "typeof/history"

func Repl(ctx context.Context, preds []typeof.Predicate, renderer *Renderer) error {
	ctx, _ = zapctx.Named(ctx, "repl")

	session := NewReplSession(ctx, preds, renderer)

	p := prompt.New(
		session.ReadLine,
		session.Complete,
		prompt.OptionHistory(loadHistory()),
		prompt.OptionPrefix(promptStr),
		prompt.OptionLivePrefix(session.Prefix),
		prompt.OptionCompletionWordSeparator(wordsep),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(complColor),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(textColor),
		prompt.OptionSelectedSuggestionBGColor(complColor),
		prompt.OptionSelectedSuggestionTextColor(prompt.Black),
		prompt.OptionSelectedDescriptionBGColor(complColor),
		prompt.OptionSelectedDescriptionTextColor(prompt.Black),
		prompt.OptionPreviewSuggestionTextColor(complColor),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionScrollbarBGColor(prompt.DarkGray),
		prompt.OptionScrollbarThumbColor(prompt.White))

	fd := int(os.Stdin.Fd())
	before, err := term.GetState(fd)
	if err != nil {
		WriteError(ctx, err)
		return err
	}

	p.Run()

	// restore terminal state manually; for some reason go-prompt doesn't restore
	// isig which breaks Ctrl+C
	return term.Restore(fd, before)
}

// ReplSession reads literals line by line, buffering incomplete forms until
// they are closed.
type ReplSession struct {
	ctx context.Context

	preds    []typeof.Predicate
	renderer *Renderer

	partial *bytes.Buffer
}

func NewReplSession(ctx context.Context, preds []typeof.Predicate, renderer *Renderer) *ReplSession {
	return &ReplSession{
		ctx:      ctx,
		preds:    preds,
		renderer: renderer,
		partial:  new(bytes.Buffer),
	}
}

// ReadLine reports every value completed by the line. History is appended
// on a best-effort basis.
func (session *ReplSession) ReadLine(in string) {
	logger := zapctx.FromContext(session.ctx)

	if err := appendHistory(in); err != nil {
		logger.Warn("failed to append to history", zap.Error(err))
	}

	fmt.Fprintln(session.partial, in)

	vals, err := typeof.ReadAll(strings.NewReader(session.partial.String()), "(repl)")
	if err != nil {
		if errors.Is(err, reader.ErrEOF) {
			// incomplete form; wait for more lines
			return
		}

		session.partial.Reset()
		WriteError(session.ctx, err)
		return
	}

	session.partial.Reset()

	stdout := ioctx.StdoutFromContext(session.ctx)
	for _, val := range vals {
		report := typeof.Inspect(session.ctx, val, session.preds...)
		if err := session.renderer.Render(stdout, report); err != nil {
			WriteError(session.ctx, err)
		}
	}
}

func (session *ReplSession) Complete(doc prompt.Document) []prompt.Suggest {
	word := doc.GetWordBeforeCursorUntilSeparator(wordsep)
	if word == "" {
		return nil
	}

	suggestions := []prompt.Suggest{}
	for _, name := range typeof.FormNames() {
		if strings.HasPrefix(name, word) {
			suggestions = append(suggestions, prompt.Suggest{
				Text:        name,
				Description: "constructor form",
			})
		}
	}

	return suggestions
}

func (session *ReplSession) Prefix() (string, bool) {
	if session.partial.Len() == 0 {
		return "", false
	}

	return strings.Repeat(".", len(promptStr)), true
}

func appendHistory(line string) error {
	logPath, err := xdg.DataFile(historyFile)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(logPath), 0700)
	if err != nil {
		return err
	}

	// concurrent sessions share the file
	lock := flock.New(logPath + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}

	defer lock.Unlock()

	history, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(history, line)
	if err != nil {
		history.Close()
		return err
	}

	return history.Close()
}

func loadHistory() []string {
	logPath, err := xdg.DataFile(historyFile)
	if err != nil {
		return []string{}
	}

	lock := flock.New(logPath + ".lock")
	if err := lock.RLock(); err == nil {
		defer lock.Unlock()
	}

	file, err := os.Open(logPath)
	if err != nil {
		return []string{}
	}

	defer file.Close()

	history := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		history = append(history, scanner.Text())
	}

	return history
}
