package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pagechat"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.Markdown {
		body, err := deps.Cleaner.CleanHTML(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
			return err
		}
		md, err := deps.NewConverter(c.URL).Convert(body)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	page, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}
	return writePage(deps.Stdout, page, c.Format, 0)
}

func (c *ExtractCmd) read(stdin io.Reader) ([]byte, error) {
	if c.File == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(c.File)
}
