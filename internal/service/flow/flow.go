// Package flow produces a best-effort textual data-flow description of a
// source file without calling any LLM provider.
package flow

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoStructure indicates no functions or classes could be recognized.
var ErrNoStructure = errors.New("no recognizable code structure found")

var definitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*func\s+(?:\([^)]*\)\s+)?(\w+)\s*\(`), // Go
	regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)\s*\(`),      // Python
	regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s+(\w+)\s*\(`), // JavaScript/TypeScript
	regexp.MustCompile(`^\s*(?:public|private|protected)\s+[\w<>\[\]]+\s+(\w+)\s*\(`), // Java/C#
	regexp.MustCompile(`^\s*class\s+(\w+)`),
	regexp.MustCompile(`^\s*fn\s+(\w+)\s*\(`), // Rust
}

var importPrefixes = []string{"import ", "from ", "#include", "require ", "use ", "using "}

type Summarizer struct{}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize scans the source text for imports, definitions and calls between
// the definitions, and renders them as a mermaid flowchart body.
func (s *Summarizer) Summarize(code string) (string, error) {
	type definition struct {
		name  string
		start int
	}

	var (
		lines   []string
		imports []string
		defs    []definition
	)

	scanner := bufio.NewScanner(strings.NewReader(code))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to scan source: %w", err)
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range importPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				imports = append(imports, trimmed)
				break
			}
		}
		for _, pattern := range definitionPatterns {
			if m := pattern.FindStringSubmatch(line); m != nil {
				defs = append(defs, definition{name: m[1], start: i})
				break
			}
		}
	}

	if len(defs) == 0 {
		return "", ErrNoStructure
	}

	// Call edges: a definition's body runs until the next definition.
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		known[d.name] = true
	}

	var b strings.Builder
	b.WriteString("flowchart TD\n")
	if len(imports) > 0 {
		b.WriteString(fmt.Sprintf("    Imports[External dependencies: %d]\n", len(imports)))
	}

	seen := make(map[string]bool)
	for i, d := range defs {
		end := len(lines)
		if i+1 < len(defs) {
			end = defs[i+1].start
		}
		for _, line := range lines[d.start+1 : end] {
			for name := range known {
				if name == d.name || !strings.Contains(line, name+"(") {
					continue
				}
				edge := fmt.Sprintf("    %s --> %s\n", d.name, name)
				if !seen[edge] {
					seen[edge] = true
					b.WriteString(edge)
				}
			}
		}
	}

	if len(seen) == 0 {
		// No internal calls; still describe the units found.
		for _, d := range defs {
			b.WriteString(fmt.Sprintf("    %s\n", d.name))
		}
	}

	return b.String(), nil
}
