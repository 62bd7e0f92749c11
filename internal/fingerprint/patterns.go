package fingerprint

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	moneyAmount = `£\s?\d[\d,]*(?:\.\d{2})?`
	numericDate = `\d{1,2}[/.-]\d{1,2}[/.-](?:\d{4}|\d{2})`
	writtenDate = `\d{1,2}(?:st|nd|rd|th)?\s+(?:january|february|march|april|may|june|july|` +
		`august|september|october|november|december),?\s+\d{4}`
)

// datePhrase matches a whole normalized date phrase.
var datePhrase = regexp.MustCompile(`^(?:` + numericDate + `|` + writtenDate + `)$`)

// keyPhrasePatterns is ordered; extraction preserves this order.
var keyPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\brent\b[^£\n]{0,40}` + moneyAmount),
	regexp.MustCompile(`(?i)\bdeposit\b[^£\n]{0,40}` + moneyAmount),
	regexp.MustCompile(`(?i)\bfees?\b[^£\n]{0,40}` + moneyAmount),
	regexp.MustCompile(`(?i)\b(?:assured\s+shorthold\s+tenancy|section\s+21|section\s+8|break\s+clause|` +
		`notice\s+period|tenancy\s+deposit\s+scheme|right\s+to\s+rent|quiet\s+enjoyment|` +
		`joint\s+and\s+several(?:ly)?|holding\s+deposit|gas\s+safety|energy\s+performance\s+certificate)\b`),
	regexp.MustCompile(`\b` + numericDate + `\b`),
	regexp.MustCompile(`(?i)\b` + writtenDate + `\b`),
	regexp.MustCompile(`(?i)\b\d+\s*-?\s*bed(?:room)?s?\b`),
	regexp.MustCompile(`(?i)\b(?:unfurnished|part[- ]?furnished|furnished)\b`),
}

// clauseLine needs a "." or ")" marker or a dotted number, so "12 months" is not a clause.
var clauseLine = regexp.MustCompile(`(?m)^[ \t]*(?:\d+[.)]|\d+(?:\.\d+)+[.)]?)[ \t]+\S`)

type subTypeMarker struct {
	tag     string
	needles []string
}

var subTypeMarkers = []subTypeMarker{
	{tag: "type:hmo", needles: []string{"house in multiple occupation", "hmo licence", "hmo license"}},
	{tag: "type:student", needles: []string{"student"}},
	{tag: "type:company-let", needles: []string{"company let"}},
	{tag: "type:lodger", needles: []string{"lodger"}},
	{tag: "type:periodic", needles: []string{"periodic tenancy", "rolling tenancy"}},
	{tag: "type:guarantor", needles: []string{"guarantor"}},
	{tag: "type:joint", needles: []string{"joint tenancy", "joint tenants"}},
}

// ExtractKeyPhrases returns the domain phrases found in text, at most
// MaxPhrasesPerPattern per pattern and MaxKeyPhrases overall.
func ExtractKeyPhrases(text string) []string {
	phrases := make([]string, 0, MaxKeyPhrases)

	for _, pattern := range keyPhrasePatterns {
		seen := make(map[string]struct{}, MaxPhrasesPerPattern)
		for _, match := range pattern.FindAllString(text, -1) {
			if len(seen) == MaxPhrasesPerPattern || len(phrases) == MaxKeyPhrases {
				break
			}
			phrase := Normalize(match)
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			phrases = append(phrases, phrase)
		}
		if len(phrases) == MaxKeyPhrases {
			break
		}
	}

	return phrases
}

// TemplatePhrases drops the date phrases from key phrases. What remains is
// shared by every lease issued from the same template.
func TemplatePhrases(phrases []string) []string {
	template := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if !datePhrase.MatchString(phrase) {
			template = append(template, phrase)
		}
	}
	return template
}

// ExtractStructure returns the structural tags of text: clause and section
// counts when positive, sub-type markers, then exactly one size class.
func ExtractStructure(text string) []string {
	var elements []string

	if clauses := len(clauseLine.FindAllStringIndex(text, -1)); clauses > 0 {
		elements = append(elements, "clauses:"+strconv.Itoa(clauses))
	}

	if sections := countSectionHeaders(text); sections > 0 {
		elements = append(elements, "sections:"+strconv.Itoa(sections))
	}

	lower := strings.ToLower(text)
	for _, marker := range subTypeMarkers {
		for _, needle := range marker.needles {
			if strings.Contains(lower, needle) {
				elements = append(elements, marker.tag)
				break
			}
		}
	}

	return append(elements, SizeClass(utf8.RuneCountInString(text)))
}

func countSectionHeaders(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if isSectionHeader(strings.TrimSpace(line)) {
			count++
		}
	}
	return count
}

// isSectionHeader matches all-caps lines ending in a colon, e.g. "RENT AND DEPOSIT:".
func isSectionHeader(line string) bool {
	if len(line) < 2 || !strings.HasSuffix(line, ":") {
		return false
	}
	if strings.IndexFunc(line, unicode.IsLetter) < 0 {
		return false
	}
	return line == strings.ToUpper(line)
}
