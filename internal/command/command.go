// Package command assembles the shell command line used to invoke the
// external downloader binary. Only two tokens may contain spaces or shell
// metacharacters and therefore need quoting: the output template and the
// URL. Everything else is emitted verbatim, in input order.
package command

import "strings"

// Option is a single command-line token. Quoted marks tokens that must be
// wrapped in double quotes when the line is assembled, which is decided
// when the option list is constructed rather than inferred later from
// position.
type Option struct {
	Token  string
	Quoted bool
}

// NewOption returns a plain, unquoted token.
func NewOption(token string) Option {
	return Option{Token: token}
}

// NewQuotedOption returns a token that will be double-quoted on assembly,
// such as an output template.
func NewQuotedOption(token string) Option {
	return Option{Token: token, Quoted: true}
}

// ParseTokens converts a flat token list into options, marking the value
// following the first "-o" flag as the output template. Lists without an
// "-o" flag, or with "-o" as the final token, get no quoted option.
func ParseTokens(tokens []string) []Option {
	options := make([]Option, len(tokens))
	template := -1
	for i, token := range tokens {
		options[i] = NewOption(token)
		if template == -1 && token == "-o" && i+1 < len(tokens) {
			template = i + 1
		}
	}
	if template != -1 {
		options[template].Quoted = true
	}
	return options
}

// Build concatenates the binary name, each option in order and the URL into
// one command line. Quoted options and the URL are wrapped in double
// quotes; adjacent tokens are separated by a single space.
func Build(bin string, options []Option, url string) string {
	var b strings.Builder
	b.WriteString(bin)
	for _, opt := range options {
		b.WriteByte(' ')
		if opt.Quoted {
			b.WriteString(quote(opt.Token))
		} else {
			b.WriteString(opt.Token)
		}
	}
	b.WriteByte(' ')
	b.WriteString(quote(url))
	return b.String()
}

// BuildCommand is the flat-list convenience form: the output template is
// recognized by its position after the "-o" flag.
func BuildCommand(tokens []string, url, bin string) string {
	return Build(bin, ParseTokens(tokens), url)
}

func quote(s string) string {
	return `"` + s + `"`
}
