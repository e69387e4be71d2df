package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkIDs(findings []Finding) []string {
	ids := make([]string, 0, len(findings))
	for _, f := range findings {
		ids = append(ids, f.Check)
	}
	return ids
}

func TestGenerate_SQLConcatenation(t *testing.T) {
	res := Generate(`"SELECT * FROM t WHERE id=" + id`, "javascript")

	require.Len(t, res.Findings, 2)
	assert.Equal(t, []string{"sql-concat", "missing-comments"}, checkIDs(res.Findings))
	assert.Equal(t, CategorySecurity, res.Findings[0].Category)
	assert.Equal(t, SeverityHigh, res.Findings[0].Severity)
	assert.Equal(t, 2, res.Findings[0].LineHint)
	assert.Equal(t, Counts{Total: 2, Security: 1, Suggestions: 1}, res.Counts)
}

func TestGenerate_SQLConcatenationWithComment(t *testing.T) {
	res := Generate(`q = "SELECT * FROM t WHERE id=" + id // lookup`, "javascript")
	assert.Equal(t, []string{"sql-concat"}, checkIDs(res.Findings))
}

func TestGenerate_Eval(t *testing.T) {
	for _, lang := range []string{"javascript", "python", "go", "whatever"} {
		res := Generate("eval(userInput)", lang)
		require.Len(t, res.Findings, 2, lang)
		assert.Equal(t, "dynamic-exec", res.Findings[0].Check)
		assert.Equal(t, SeverityCritical, res.Findings[0].Severity)
		assert.Equal(t, "missing-comments", res.Findings[1].Check)
		assert.Equal(t, Counts{Total: 2, Security: 1, Suggestions: 1}, res.Counts)
	}
}

func TestGenerate_VarWithComment(t *testing.T) {
	res := Generate("var x = 1; // ok", "javascript")

	require.Len(t, res.Findings, 1)
	assert.Equal(t, "var-declaration", res.Findings[0].Check)
	assert.Equal(t, CategorySuggestion, res.Findings[0].Category)
	assert.Equal(t, Counts{Total: 1, Suggestions: 1}, res.Counts)
}

func TestGenerate_LanguageSpecificChecks(t *testing.T) {
	tests := []struct {
		name   string
		source string
		lang   string
		want   []string
	}{
		{"var in python", "var x = 1 # note", "python", []string{}},
		{"var in typescript", "var x = 1 // note", "ts", []string{"var-declaration"}},
		{"print in python", "print('hi') # greet", "python", []string{"print-call"}},
		{"print in javascript", "print('hi') // greet", "javascript", []string{}},
		{"print in py alias", "print('hi') # greet", "PY", []string{"print-call"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Generate(tt.source, tt.lang)
			assert.Equal(t, tt.want, checkIDs(res.Findings))
		})
	}
}

func TestGenerate_LongBodyCountsCharacters(t *testing.T) {
	exact := strings.Repeat("x", 100) + "#"
	assert.Contains(t, checkIDs(Generate(exact, "go").Findings), "long-body")

	hundred := strings.Repeat("x", 99) + "#"
	assert.NotContains(t, checkIDs(Generate(hundred, "go").Findings), "long-body")

	// 100 multi-byte runes stay under the threshold.
	runes := strings.Repeat("é", 99) + "#"
	assert.NotContains(t, checkIDs(Generate(runes, "go").Findings), "long-body")
}

func TestGenerate_GroupsByCategory(t *testing.T) {
	src := "var q = \"SELECT * FROM users WHERE name = '\" + name + \"'\";\n" +
		"eval(q);\n" +
		"var unused = 42; var another = 43; var third = 44;"
	require.Greater(t, len(src), 100)

	res := Generate(src, "javascript")

	assert.Equal(t,
		[]string{"long-body", "sql-concat", "dynamic-exec", "var-declaration", "missing-comments"},
		checkIDs(res.Findings))
	assert.Equal(t, Counts{Total: 5, Issues: 1, Security: 2, Suggestions: 2}, res.Counts)
}

func TestGenerate_NoFindings(t *testing.T) {
	res := Generate("x := 1 // fine", "go")
	assert.NotNil(t, res.Findings)
	assert.Empty(t, res.Findings)
	assert.Equal(t, Counts{}, res.Counts)
}

func TestGenerate_Deterministic(t *testing.T) {
	inputs := []Input{
		{Source: "eval(x) + SELECT", Language: "python"},
		{Source: strings.Repeat("print(1)\n", 20), Language: "python"},
		{Source: "var a // c", Language: "javascript"},
	}
	for _, in := range inputs {
		first := Generate(in.Source, in.Language)
		second := Generate(in.Source, in.Language)
		assert.Equal(t, first, second)
	}
}

func TestGenerate_CountsInvariant(t *testing.T) {
	sources := []string{
		"eval(userInput)",
		"SELECT a + b",
		strings.Repeat("var x = 1;\n", 12),
		"print(x) # log",
		"nothing to see // here",
	}
	g := NewGenerator(Options{Extended: true})
	for _, src := range sources {
		for _, lang := range []string{"javascript", "python", "rust"} {
			res := g.Generate(src, lang)
			c := res.Counts
			assert.Equal(t, c.Total, c.Issues+c.Security+c.Suggestions)
			assert.Equal(t, c.Total, len(res.Findings))
		}
	}
}

func TestGenerate_FindingIDsStable(t *testing.T) {
	a := Generate("eval(x)", "javascript")
	b := Generate("eval(y)", "python")
	require.NotEmpty(t, a.Findings)
	assert.Equal(t, a.Findings[0].ID, b.Findings[0].ID)
	assert.Len(t, a.Findings[0].ID, 16)
}

func TestGenerator_DefaultExcludesExtended(t *testing.T) {
	res := Generate("os.system(cmd) # run", "python")
	assert.Empty(t, res.Findings)
}

func TestGenerator_Extended(t *testing.T) {
	g := NewGenerator(Options{Extended: true})

	tests := []struct {
		name     string
		source   string
		lang     string
		check    string
		wantLine int
	}{
		{"shell exec", "import os\n# run\nos.system(cmd)", "python", "shell-exec", 3},
		{"credential", "// auth\nconst password = \"admin123\";", "javascript", "hardcoded-credential", 2},
		{"loose equality", "// cmp\nif (a == b) {}", "javascript", "loose-equality", 2},
		{"sql write", "# q\nsql = \"DELETE FROM t WHERE id=\" + id", "python", "sql-write-concat", 2},
		{"loops", "# l\nfor a in x:\n  for b in y:\n    pass", "python", "multiple-loops", 2},
		{"loop concat", "# l\nfor x in y:\n    s = s + x", "python", "loop-concat", 2},
		{"long file", strings.Repeat("x = 1 # n\n", 60), "python", "long-file", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Generate(tt.source, tt.lang)
			var found *Finding
			for i := range res.Findings {
				if res.Findings[i].Check == tt.check {
					found = &res.Findings[i]
				}
			}
			require.NotNil(t, found, "expected %s in %v", tt.check, checkIDs(res.Findings))
			assert.Equal(t, tt.wantLine, found.LineHint)
		})
	}
}

func TestGenerator_LooseEqualitySkipsStrict(t *testing.T) {
	g := NewGenerator(Options{Extended: true})
	res := g.Generate("// cmp\nif (a === b) {}", "javascript")
	assert.NotContains(t, checkIDs(res.Findings), "loose-equality")

	res = g.Generate("# cmp\nif a == b: pass", "python")
	assert.NotContains(t, checkIDs(res.Findings), "loose-equality")
}

func TestGenerator_RulesDisableAndOverride(t *testing.T) {
	rules := &Rules{
		Disable:           []string{"missing-comments"},
		SeverityOverrides: map[Category]Severity{CategorySecurity: SeverityLow},
	}
	g := NewGenerator(Options{Rules: rules})

	res := g.Generate("eval(userInput)", "javascript")

	require.Len(t, res.Findings, 1)
	assert.Equal(t, "dynamic-exec", res.Findings[0].Check)
	assert.Equal(t, SeverityLow, res.Findings[0].Severity)
}

func TestGenerator_LongFileThreshold(t *testing.T) {
	g := NewGenerator(Options{Extended: true})
	fifty := strings.TrimSuffix(strings.Repeat("x = 1 # n\n", 50), "\n")
	assert.NotContains(t, checkIDs(g.Generate(fifty, "python").Findings), "long-file")
	assert.Contains(t, checkIDs(g.Generate(fifty+"\nx = 2", "python").Findings), "long-file")
}

func TestGenerator_EffectiveSeverity(t *testing.T) {
	rules := &Rules{SeverityOverrides: map[Category]Severity{CategorySecurity: SeverityLow}}
	g := NewGenerator(Options{Rules: rules})
	for _, c := range g.Checks() {
		if c.Category == CategorySecurity {
			assert.Equal(t, SeverityLow, g.EffectiveSeverity(c), c.ID)
		} else {
			assert.Equal(t, c.Severity, g.EffectiveSeverity(c), c.ID)
		}
	}

	plain := NewGenerator(Options{})
	for _, c := range plain.Checks() {
		assert.Equal(t, c.Severity, plain.EffectiveSeverity(c), c.ID)
	}
}

func TestGenerator_RulesEnableExtended(t *testing.T) {
	g := NewGenerator(Options{Rules: &Rules{Extended: true}})
	var ids []string
	for _, c := range g.Checks() {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "shell-exec")
	assert.Len(t, ids, len(AllChecks()))
}

func TestGenerator_ChecksOrder(t *testing.T) {
	var ids []string
	for _, c := range NewGenerator(Options{}).Checks() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		"sql-concat", "dynamic-exec", "var-declaration", "print-call", "long-body", "missing-comments",
	}, ids)
}
