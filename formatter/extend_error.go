package formatter

// ExtendErrorFormatter renders the rules that correspond to hard Sass
// compilation failures. The suggestion block leads because applying it is
// the only way to get a building stylesheet back.
type ExtendErrorFormatter struct{}

func (f *ExtendErrorFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{- if .Suggestion }}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}
{{- end }}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
