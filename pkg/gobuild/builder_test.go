package gobuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncAndIf(t *testing.T) {
	b := New()
	closeFunc := b.Func("add(a, b int) int")
	closeIf := b.If("a > b")
	b.WL("return a")
	closeIf()
	closeElse := b.Else()
	b.WL("return b")
	closeElse()
	closeFunc()

	got := b.String()
	assert.Contains(t, got, "func add(a, b int) int {")
	assert.Contains(t, got, "if a > b {")
	assert.Contains(t, got, "return a")
	assert.Contains(t, got, "} else {")
	assert.Contains(t, got, "return b")
}

func TestSwitchCaseDefault(t *testing.T) {
	b := New()
	closeSwitch := b.Switch("key")
	closeCase := b.Case(`"x"`)
	b.WL("n++")
	closeCase()
	closeDefault := b.Default()
	b.WL("skip()")
	closeDefault()
	closeSwitch()

	got := b.String()
	assert.Contains(t, got, "switch key {")
	assert.Contains(t, got, `case "x":`)
	assert.Contains(t, got, "n++")
	assert.Contains(t, got, "default:")
	assert.Contains(t, got, "skip()")
}

func TestVarHoisting(t *testing.T) {
	b := New()
	closeFunc := b.Func("f()")
	b.WL("doSomething()")
	b.Var("element", "int64")
	b.WL("use(element)")
	closeFunc()

	got := b.String()
	varIdx := indexOf(got, "var element int64")
	useIdx := indexOf(got, "use(element)")
	doIdx := indexOf(got, "doSomething()")
	assert.True(t, varIdx >= 0 && doIdx >= 0 && useIdx >= 0)
	assert.Less(t, varIdx, doIdx, "hoisted var decl must precede earlier-emitted statements")
	assert.Less(t, doIdx, useIdx)
}

func TestLinesWithHole(t *testing.T) {
	b := New()
	b.LinesWithHole(`
		a := 1
		{{}}
		b := 2
	`, func() {
		b.WL("mid := 0")
	})
	got := b.String()
	assert.Less(t, indexOf(got, "a := 1"), indexOf(got, "mid := 0"))
	assert.Less(t, indexOf(got, "mid := 0"), indexOf(got, "b := 2"))
}

func TestLinesNamedPlaceholders(t *testing.T) {
	b := New()
	b.Lines(`
		{dst} = parse{0}(buf, cursor)
	`, 7, map[string]any{"dst": "v.Field"})
	assert.Contains(t, b.String(), "v.Field = parse7(buf, cursor)")
}

func TestImportDeduplicationAndSort(t *testing.T) {
	b := New()
	b.Import("unicode/utf8")
	b.Import("fmt")
	b.Import("unicode/utf8")
	assert.Len(t, b.imports, 2)

	path := filepath.Join(t.TempDir(), "out.go")
	assert.NoError(t, b.Flush(path, "p"))
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"fmt"`)
	assert.Less(t, indexOf(out, `"fmt"`), indexOf(out, `"unicode/utf8"`))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
