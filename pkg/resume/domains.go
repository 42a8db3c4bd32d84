package resume

import (
	"fmt"
	"strings"
)

// FallbackDomain is used whenever classification is inconclusive or the
// generator returns a label outside the enumeration.
const FallbackDomain = "Core Engineering"

// domainIDs fixes the enumeration order for prompt construction so the prompt
// and the validator can never drift apart.
var domainIDs = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}

// Domains maps stable identifiers to the human-readable domain labels.
var Domains = map[int]string{
	1:  "AI/ML",
	2:  "Data Science",
	3:  "Web Development",
	4:  "Mobile App Development",
	5:  "Cybersecurity",
	6:  "DevOps & Cloud",
	7:  "Blockchain",
	8:  "UI/UX Design",
	9:  "Game Development",
	10: "Embedded Systems",
	11: "IoT",
	12: "Robotics",
	13: "EEE",
	14: "ECE",
	15: "Mechanical Engineering",
	16: "Civil Engineering",
	17: "Chemical Engineering",
	18: "Core Engineering",
}

// DomainText renders the enumeration for embedding into prompts.
func DomainText() string {
	var sb strings.Builder
	for _, id := range domainIDs {
		fmt.Fprintf(&sb, "%d - %s\n", id, Domains[id])
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// CanonicalDomain maps a generator-provided label onto the enumeration.
// Unrecognized labels fall back rather than fail: a wrong guess from the
// model should not reject an otherwise valid extraction.
func CanonicalDomain(label string) string {
	label = strings.TrimSpace(label)
	for _, id := range domainIDs {
		if strings.EqualFold(Domains[id], label) {
			return Domains[id]
		}
	}
	return FallbackDomain
}
