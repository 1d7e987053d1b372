package main

import (
	"fmt"

	"github.com/fwojciec/pagechat"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	page, err := deps.Parser.Parse(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}

	var tokens int
	if c.Tokens && deps.Tokens != nil {
		tokens, err = deps.Tokens.CountTokens(deps.Ctx, deps.Context.Build(page))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
			return err
		}
	}

	return writePage(deps.Stdout, page, c.Format, tokens)
}
