package renderer

// RenderStatement renders the Statement view model to a markdown string.
func RenderStatement(s *Statement) string {
	partials := map[string]string{
		"statement_lines": "statement_lines.md",
	}
	return renderTemplate("statement", "statement.md", partials, s)
}
