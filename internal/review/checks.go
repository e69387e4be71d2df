package review

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// longBodyThreshold is the character count above which a body is flagged as too long.
const longBodyThreshold = 100

// longFileThreshold is the line count above which a snippet is flagged as too long.
const longFileThreshold = 50

// Check is one entry in the generator's battery. Match reports the line hint
// and whether the predicate holds for the given source and language family.
type Check struct {
	ID         string
	Category   Category
	Severity   Severity
	Message    string
	Suggestion string
	Extended   bool

	match func(src string, family Family) (int, bool)
}

// Match runs the check's predicate.
func (c Check) Match(src string, family Family) (int, bool) {
	return c.match(src, family)
}

var (
	sqlWritePattern   = regexp.MustCompile(`(?i)(INSERT|UPDATE|DELETE).*\+`)
	credentialPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)\s*=\s*['"][^'"]+['"]`)
)

// defaultChecks is the fixed battery, in evaluation order.
var defaultChecks = []Check{
	{
		ID:         "sql-concat",
		Category:   CategorySecurity,
		Severity:   SeverityHigh,
		Message:    "Potential SQL injection vulnerability detected",
		Suggestion: "Use parameterized queries or prepared statements",
		match: func(src string, _ Family) (int, bool) {
			return 2, strings.Contains(src, "SELECT") && strings.Contains(src, "+")
		},
	},
	{
		ID:         "dynamic-exec",
		Category:   CategorySecurity,
		Severity:   SeverityCritical,
		Message:    "Use of eval() or exec() detected - major security risk",
		Suggestion: "Avoid using eval() or exec() with user input",
		match: func(src string, _ Family) (int, bool) {
			return 1, strings.Contains(src, "eval(") || strings.Contains(src, "exec(")
		},
	},
	{
		ID:         "var-declaration",
		Category:   CategorySuggestion,
		Severity:   SeverityLow,
		Message:    "Consider using let or const instead of var",
		Suggestion: "Use let for block-scoped variables or const for constants",
		match: func(src string, family Family) (int, bool) {
			return 1, family == FamilyJavaScript && strings.Contains(src, "var ")
		},
	},
	{
		ID:         "print-call",
		Category:   CategorySuggestion,
		Severity:   SeverityLow,
		Message:    "Consider using logging instead of print statements",
		Suggestion: "Use logging module for better debugging and production code",
		match: func(src string, family Family) (int, bool) {
			return 1, family == FamilyPython && strings.Contains(src, "print(")
		},
	},
	{
		ID:         "long-body",
		Category:   CategoryIssue,
		Severity:   SeverityMedium,
		Message:    "Function is quite long - consider breaking it down",
		Suggestion: "Split into smaller, more focused functions",
		match: func(src string, _ Family) (int, bool) {
			return 1, utf8.RuneCountInString(src) > longBodyThreshold
		},
	},
	{
		ID:         "missing-comments",
		Category:   CategorySuggestion,
		Severity:   SeverityLow,
		Message:    "Consider adding comments to explain complex logic",
		Suggestion: "Add meaningful comments to improve code readability",
		match: func(src string, _ Family) (int, bool) {
			return 1, !strings.Contains(src, "//") && !strings.Contains(src, "#")
		},
	},
}

// extendedChecks are opt-in and report the line of their first match.
var extendedChecks = []Check{
	{
		ID:         "sql-write-concat",
		Category:   CategorySecurity,
		Severity:   SeverityHigh,
		Message:    "Potential SQL injection - string concatenation in INSERT, UPDATE or DELETE",
		Suggestion: "Use parameterized queries or prepared statements",
		Extended:   true,
		match: func(src string, _ Family) (int, bool) {
			loc := sqlWritePattern.FindStringIndex(src)
			if loc == nil {
				return 0, false
			}
			return lineAt(src, loc[0]), true
		},
	},
	{
		ID:         "shell-exec",
		Category:   CategorySecurity,
		Severity:   SeverityCritical,
		Message:    "Use of system() or shell_exec() - potential command injection",
		Suggestion: "Avoid passing user input to shell commands",
		Extended:   true,
		match: func(src string, _ Family) (int, bool) {
			return firstLine(src, "system(", "shell_exec(")
		},
	},
	{
		ID:         "hardcoded-credential",
		Category:   CategorySecurity,
		Severity:   SeverityHigh,
		Message:    "Hardcoded credentials detected",
		Suggestion: "Use environment variables or secure credential storage",
		Extended:   true,
		match: func(src string, _ Family) (int, bool) {
			loc := credentialPattern.FindStringIndex(src)
			if loc == nil {
				return 0, false
			}
			return lineAt(src, loc[0]), true
		},
	},
	{
		ID:         "loose-equality",
		Category:   CategorySuggestion,
		Severity:   SeverityMedium,
		Message:    "Use of loose equality operator",
		Suggestion: "Use strict equality (===) instead of loose equality (==)",
		Extended:   true,
		match: func(src string, family Family) (int, bool) {
			if family != FamilyJavaScript || strings.Contains(src, "===") {
				return 0, false
			}
			return firstLine(src, "==")
		},
	},
	{
		ID:         "multiple-loops",
		Category:   CategoryIssue,
		Severity:   SeverityMedium,
		Message:    "Multiple loops detected",
		Suggestion: "Consider optimizing nested loops or using more efficient algorithms",
		Extended:   true,
		match: func(src string, _ Family) (int, bool) {
			if strings.Count(src, "for ") > 1 || strings.Count(src, "while ") > 1 {
				return firstLine(src, "for ", "while ")
			}
			return 0, false
		},
	},
	{
		ID:         "loop-concat",
		Category:   CategoryIssue,
		Severity:   SeverityLow,
		Message:    "String concatenation in loop",
		Suggestion: "Consider using join() or StringBuilder for better performance",
		Extended:   true,
		match: func(src string, _ Family) (int, bool) {
			if !strings.Contains(src, "+") {
				return 0, false
			}
			return firstLine(src, "for ")
		},
	},
	{
		ID:         "long-file",
		Category:   CategoryIssue,
		Severity:   SeverityMedium,
		Message:    "Function is quite long",
		Suggestion: "Consider breaking into smaller functions",
		Extended:   true,
		match: func(src string, _ Family) (int, bool) {
			return 1, strings.Count(src, "\n")+1 > longFileThreshold
		},
	},
}

// AllChecks returns the default battery followed by the extended checks.
func AllChecks() []Check {
	out := make([]Check, 0, len(defaultChecks)+len(extendedChecks))
	out = append(out, defaultChecks...)
	return append(out, extendedChecks...)
}

func lookupCheck(id string) (Check, bool) {
	for _, c := range AllChecks() {
		if c.ID == id {
			return c, true
		}
	}
	return Check{}, false
}

// lineAt returns the 1-based line containing byte offset idx.
func lineAt(src string, idx int) int {
	return strings.Count(src[:idx], "\n") + 1
}

// firstLine returns the line of the earliest occurrence of any needle.
func firstLine(src string, needles ...string) (int, bool) {
	best := -1
	for _, n := range needles {
		if i := strings.Index(src, n); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return lineAt(src, best), true
}
