package formatter

import (
	"fmt"
	"strings"
)

type HighFanoutFormatter struct{}

func (f *HighFanoutFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent -}}
{{fanoutInfo .Padding .Message}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}

// fanoutInfo pulls the occurrence count out of the message and renders it
// as a separate gauge line under the underline.
func fanoutInfo(padding string, message string) string {
	count := ""
	if i := strings.Index(message, "appears in "); i >= 0 {
		rest := message[i+len("appears in "):]
		if j := strings.Index(rest, " "); j > 0 {
			count = rest[:j]
		}
	}
	if count == "" {
		return ""
	}

	var endString string
	endString = lineStyle.Sprintf("%s| ", padding)
	endString += messageStyle.Sprintf("%s\n", fmt.Sprintf("Fan-out: %s selector groups rewritten per extender", count))
	return endString
}
