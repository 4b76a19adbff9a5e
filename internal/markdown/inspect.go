package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// GoldmarkInspector implements interfaces.BodyInspector using the goldmark
// parser. The inspector is intentionally stateless so callers can reuse a
// single instance across requests without additional locking.
type GoldmarkInspector struct {
	defaultOptions interfaces.InspectOptions
}

// NewGoldmarkInspector constructs an inspector with sensible defaults (GFM
// extensions enabled). Callers can override behaviour per invocation through
// InspectWithOptions.
func NewGoldmarkInspector(defaults interfaces.InspectOptions) *GoldmarkInspector {
	return &GoldmarkInspector{
		defaultOptions: defaults,
	}
}

// Inspect satisfies interfaces.BodyInspector using the inspector's default
// configuration.
func (p *GoldmarkInspector) Inspect(body []byte) (*interfaces.BodyReport, error) {
	return p.InspectWithOptions(body, p.defaultOptions)
}

// InspectWithOptions walks the Markdown AST and reports headings, fenced code
// blocks, embed directives, and the word count. The body is analysed as
// literal text; nothing is rendered or resolved.
func (p *GoldmarkInspector) InspectWithOptions(body []byte, opts interfaces.InspectOptions) (*interfaces.BodyReport, error) {
	engine := newGoldmarkEngine(opts)
	root := engine.Parser().Parse(text.NewReader(body))

	report := &interfaces.BodyReport{}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			report.Headings = append(report.Headings, interfaces.Heading{
				Level: node.Level,
				Text:  string(nodeText(node, body)),
			})
		case *ast.FencedCodeBlock:
			report.CodeBlocks = append(report.CodeBlocks, interfaces.CodeBlock{
				Language: string(node.Language(body)),
				Lines:    node.Lines().Len(),
			})
		case *ast.Text:
			report.WordCount += len(strings.Fields(string(node.Segment.Value(body))))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown inspect: %w", err)
	}

	if !opts.SkipShortcodes {
		report.Embeds = scanEmbeds(body)
	}

	return report, nil
}

// newGoldmarkEngine builds a goldmark.Markdown configured for AST-only use.
// The renderer is never invoked.
func newGoldmarkEngine(opts interfaces.InspectOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

func nodeText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		default:
			buf.Write(nodeText(child, source))
		}
	}
	return buf.Bytes()
}

// embedPattern matches Hugo-style video shortcodes; the module records their
// literal identifier and label, never resolving them.
var embedPattern = regexp.MustCompile(`\{\{<\s*(youtube|vimeo|video)\s+([^>]*?)\s*>\}\}`)

func scanEmbeds(body []byte) []interfaces.EmbedRef {
	matches := embedPattern.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	embeds := make([]interfaces.EmbedRef, 0, len(matches))
	for _, match := range matches {
		id, label := parseEmbedArgs(string(match[2]))
		if id == "" {
			continue
		}
		embeds = append(embeds, interfaces.EmbedRef{
			Provider: string(match[1]),
			ID:       id,
			Label:    label,
		})
	}
	if len(embeds) == 0 {
		return nil
	}
	return embeds
}

// parseEmbedArgs handles both positional (`ID "Label"`) and named
// (`id="ID" title="Label"`) shortcode arguments.
func parseEmbedArgs(raw string) (id, label string) {
	for _, token := range tokenizeArgs(raw) {
		if key, value, ok := strings.Cut(token, "="); ok {
			value = strings.Trim(value, `"`)
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "id":
				id = value
			case "title", "label":
				label = value
			}
			continue
		}

		if strings.HasPrefix(token, `"`) {
			if label == "" {
				label = strings.Trim(token, `"`)
			}
			continue
		}
		if id == "" {
			id = token
		}
	}
	return id, label
}

func tokenizeArgs(raw string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
