package renderer

// RenderSummary renders the Summary view model to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_accounts": "summary_accounts.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderAccounts renders a plain account listing, in the order given (the
// caller picks the sort strategy).
func RenderAccounts(rows []AccountRow) string {
	data := struct{ Rows []AccountRow }{Rows: rows}
	return renderTemplate("accounts", "accounts.md", nil, data)
}
