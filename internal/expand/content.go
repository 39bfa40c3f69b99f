package expand

import (
	"fmt"
	"strings"
)

// Content is expanded text split into literal runs and <N> positional
// placeholders. Placeholders let a sequence splice in raw command-line
// tokens, e.g. a sequence "git commit -m <1>\n" typed as the first
// token picks up the second token as its message.
type Content struct {
	parts []contentPart
}

type contentPart struct {
	text  string
	index int
	isVar bool
}

// ParseContent scans text for <N> placeholders. A '<' not followed by
// digits and '>' is literal text.
func ParseContent(text string) Content {
	var (
		parts   []contentPart
		literal strings.Builder
		digits  strings.Builder
		inVar   bool
	)
	for _, r := range text {
		if inVar {
			switch {
			case isDigit(r):
				digits.WriteRune(r)
			case r == '>' && digits.Len() > 0:
				parts = append(parts, contentPart{text: literal.String()})
				literal.Reset()
				index := 0
				for _, c := range digits.String() {
					index = index*10 + int(c-'0')
				}
				parts = append(parts, contentPart{index: index, isVar: true})
				digits.Reset()
				inVar = false
			default:
				// Not a placeholder after all; keep the scanned text.
				literal.WriteByte('<')
				literal.WriteString(digits.String())
				digits.Reset()
				inVar = false
				if r == '<' {
					inVar = true
				} else {
					literal.WriteRune(r)
				}
			}
			continue
		}
		if r == '<' {
			inVar = true
			continue
		}
		literal.WriteRune(r)
	}
	if inVar {
		literal.WriteByte('<')
		literal.WriteString(digits.String())
	}
	parts = append(parts, contentPart{text: literal.String()})
	return Content{parts: parts}
}

// Render substitutes each placeholder with args[N]. Indexes outside
// args render literally as <N>.
func (c Content) Render(args []string) string {
	var b strings.Builder
	for _, p := range c.parts {
		if !p.isVar {
			b.WriteString(p.text)
			continue
		}
		if p.index < len(args) {
			b.WriteString(args[p.index])
		} else {
			fmt.Fprintf(&b, "<%d>", p.index)
		}
	}
	return b.String()
}

// String renders the content with placeholders intact.
func (c Content) String() string {
	var b strings.Builder
	for _, p := range c.parts {
		if p.isVar {
			fmt.Fprintf(&b, "<%d>", p.index)
		} else {
			b.WriteString(p.text)
		}
	}
	return b.String()
}
