package textdecode

// Result is converted text tagged with whether it stands in for a failure.
// Failed results are still displayable; callers decide whether to show them
// differently.
type Result struct {
	Text   string
	Failed bool
}

// Ok wraps successfully produced text.
func Ok(text string) Result {
	return Result{Text: text}
}

// Failure builds a failed result whose text is the safe form of v,
// typically the error that caused the failure.
func Failure(v any) Result {
	return Result{Text: Safe(v), Failed: true}
}

func (r Result) String() string {
	return r.Text
}
