package nlp

import (
	"regexp"
	"strings"
)

var (
	reParaBreak = regexp.MustCompile(`\n{2,}`)
	reHSpace    = regexp.MustCompile(`[ \t\f\v\x{00A0}]{2,}`)
)

// CleanText normalizes raw text extracted from a resume document before it is
// handed to the model: line endings are unified, runs of horizontal whitespace
// are collapsed, lines are stripped with adjacent duplicates dropped, and
// duplicate paragraphs are removed keeping first occurrence.
// Total over any input; CleanText(CleanText(s)) == CleanText(s).
func CleanText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reHSpace.ReplaceAllString(s, " ")

	// Blank-line runs delimit paragraphs. Line cleanup happens inside each
	// paragraph so paragraph boundaries survive until the dedup below.
	paras := reParaBreak.Split(s, -1)
	seen := make(map[string]struct{}, len(paras))
	unique := make([]string, 0, len(paras))
	for _, p := range paras {
		p = cleanLines(p)
		if p == "" {
			continue
		}
		// Paragraph dedup is global, first occurrence wins.
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return strings.Join(unique, "\n\n")
}

// cleanLines strips every line of a paragraph, dropping empty lines and lines
// identical to the immediately preceding retained line.
func cleanLines(p string) string {
	lines := strings.Split(p, "\n")
	cleaned := make([]string, 0, len(lines))
	prev := ""
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && line != prev {
			cleaned = append(cleaned, line)
		}
		prev = line
	}
	return strings.Join(cleaned, "\n")
}
