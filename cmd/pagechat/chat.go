package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pagechat"
)

const chatHelp = `Commands:
  /url <url>   parse a page, replacing the current one
  /info        show a summary of the current page
  /history     show the conversation so far
  /clear       clear the conversation
  /reset       clear the page, conversation and credentials
  /help        show this help
  /quit        exit
Anything else is a question about the current page.`

// maxLineBytes bounds a single line of chat input.
const maxLineBytes = 1 << 20

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	out := deps.Stdout
	c.configure(deps)

	if c.URL != "" {
		c.parse(deps, c.URL)
	}
	fmt.Fprintln(out, "Type a question, or /help for commands.")

	readCtx, stopReading := context.WithCancel(deps.Ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, deps.Stdin)
	for {
		fmt.Fprint(out, "> ")
		var line string
		select {
		case <-deps.Ctx.Done():
			fmt.Fprintln(out)
			return nil
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-readErr
			}
			line = strings.TrimSpace(next)
		}

		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			c.ask(deps, line)
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch name {
		case "/quit", "/exit":
			return nil
		case "/help":
			fmt.Fprintln(out, chatHelp)
		case "/url":
			if arg == "" {
				fmt.Fprintln(out, "Usage: /url <url>")
				continue
			}
			c.parse(deps, arg)
		case "/info":
			if page := deps.Session.Page(); page != nil {
				fmt.Fprint(out, pagechat.FormatSummary(page))
			} else {
				fmt.Fprintln(out, "No page loaded. Use /url <url>.")
			}
		case "/history":
			writeHistory(out, deps.Session.History())
		case "/clear":
			deps.Session.ClearHistory()
			fmt.Fprintln(out, "Conversation cleared.")
		case "/reset":
			deps.Session.Reset()
			fmt.Fprintln(out, "Session reset.")
			c.configure(deps)
		default:
			fmt.Fprintf(out, "Unknown command %s. Type /help for commands.\n", name)
		}
	}
}

// readLines delivers lines from r until it is exhausted or ctx is done.
// Once lines is closed the error channel holds the read error, nil when
// reading stopped because of ctx. A read blocked on r outlives ctx until r
// yields.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// configure sets up the model when a key is available. A missing key is not
// fatal here: questions are answered with the configuration message.
func (c *ChatCmd) configure(deps *Dependencies) {
	if deps.APIKey == "" {
		fmt.Fprintln(deps.Stdout, "Gemini API key not set; questions cannot be answered. Set GEMINI_API_KEY or pass --api-key.")
		return
	}
	if err := deps.Session.Configure(deps.Ctx, deps.APIKey); err != nil {
		fmt.Fprintf(deps.Stdout, "Error configuring Gemini API: %s\n", pagechat.ErrorMessage(err))
	}
}

func (c *ChatCmd) parse(deps *Dependencies, url string) {
	page := deps.Session.ParseURL(deps.Ctx, url)
	if !page.OK() {
		fmt.Fprintf(deps.Stdout, "Error: %s\n", page.ErrorMessage)
		return
	}
	fmt.Fprint(deps.Stdout, pagechat.FormatSummary(page))
}

func (c *ChatCmd) ask(deps *Dependencies, question string) {
	reply, err := deps.Session.Ask(deps.Ctx, question)
	if err != nil {
		fmt.Fprintln(deps.Stdout, reply)
		return
	}
	fmt.Fprintln(deps.Stdout, render(reply, c.Raw))
}

func writeHistory(w io.Writer, turns []pagechat.Turn) {
	if len(turns) == 0 {
		fmt.Fprintln(w, "No conversation yet.")
		return
	}
	for _, turn := range turns {
		who := "You"
		if turn.Role == pagechat.RoleAssistant {
			who = "Assistant"
		}
		fmt.Fprintf(w, "%s: %s\n", who, turn.Message)
	}
}
