package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "go tagged fence",
			raw:  "Here is the parser:\n```go\npackage main\n\nfunc main() {}\n```\nLet me know!",
			want: "package main\n\nfunc main() {}",
		},
		{
			name: "go fence preferred over earlier untagged fence",
			raw:  "```\nnot code\n```\n```go\npackage main\n```",
			want: "package main",
		},
		{
			name: "untagged fence",
			raw:  "Sure:\n```\npackage main\n```",
			want: "package main",
		},
		{
			name: "no fences returns trimmed input",
			raw:  "  package main\n\nfunc main() {}\n\n",
			want: "package main\n\nfunc main() {}",
		},
		{
			name: "unclosed fence takes the rest",
			raw:  "```go\npackage main",
			want: "package main",
		},
		{
			name: "golang tag is not a go fence",
			raw:  "```golang\npackage main\n```",
			want: "golang\npackage main",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "only the first fenced block is taken",
			raw:  "```go\nfirst\n```\n```go\nsecond\n```",
			want: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.raw))
		})
	}
}
