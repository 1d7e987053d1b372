package main

import (
	"fmt"

	"github.com/fwojciec/pagechat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := deps.Session.Configure(deps.Ctx, deps.APIKey); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ReplyMessage(err))
		if pagechat.ErrorCode(err) == pagechat.ECONFIG {
			fmt.Fprintln(deps.Stderr, "Hint: set GEMINI_API_KEY or pass --api-key. Get a key at https://aistudio.google.com/apikey")
		}
		return err
	}

	page := deps.Session.ParseURL(deps.Ctx, c.URL)
	if !page.OK() {
		fmt.Fprintf(deps.Stderr, "error: %s\n", page.ErrorMessage)
		return page.Err()
	}

	reply, err := deps.Session.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reply)
		return err
	}

	fmt.Fprintln(deps.Stdout, render(reply, c.Raw))
	return nil
}
