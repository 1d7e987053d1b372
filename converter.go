package pagechat

// Converter renders cleaned page markup as Markdown for the extract view.
type Converter interface {
	// Convert transforms body markup, already stripped of boilerplate
	// elements, into Markdown. Empty input is EINVALID.
	Convert(html string) (string, error)
}
