package schemaconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markojukic/jsongen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const pointJSON = `{
  "kind": "struct",
  "name": "Point",
  "otherKeys": "skip",
  "fields": [
    {"goName": "X", "jsonName": "x", "type": {"kind": "int64"}},
    {"goName": "Y", "jsonName": "y", "type": {"kind": "int64"}}
  ]
}`

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "point.json", pointJSON)
	s, root, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, s)

	st, ok := root.(*jsongen.Struct)
	require.True(t, ok)
	assert.Equal(t, "Point", st.Name())
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "X", st.Fields[0].GoName)
	assert.Equal(t, "x", st.Fields[0].JSONName)
}

const pointYAML = `
kind: struct
name: Point
otherKeys: skip
fields:
  - goName: X
    jsonName: x
    type:
      kind: int64
  - goName: Y
    jsonName: y
    type:
      kind: int64
`

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "point.yaml", pointYAML)
	s, root, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, s)

	st, ok := root.(*jsongen.Struct)
	require.True(t, ok)
	assert.Equal(t, "Point", st.Name())
	require.Len(t, st.Fields, 2)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "point.txt", pointJSON)
	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestLoad_UnknownKind(t *testing.T) {
	path := writeFile(t, "bad.json", `{"kind": "nonsense"}`)
	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoad_UnknownOtherKeys(t *testing.T) {
	path := writeFile(t, "bad.json", `{"kind": "struct", "name": "X", "otherKeys": "panic", "fields": []}`)
	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownOtherKeys)
}

func TestLoad_NestedSliceOfArray(t *testing.T) {
	path := writeFile(t, "nested.json", `{
		"kind": "slice",
		"name": "Rows",
		"elem": {
			"kind": "array",
			"size": 3,
			"elem": {"kind": "float64"}
		}
	}`)
	_, root, err := Load(path)
	require.NoError(t, err)
	sl, ok := root.(*jsongen.Slice)
	require.True(t, ok)
	arr, ok := sl.Elem.(*jsongen.Array)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Size)
}
