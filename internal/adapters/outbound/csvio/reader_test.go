package csvio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/importlint/importlint/internal/adapters/outbound/csvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_Read(t *testing.T) {
	path := writeFile(t, "passwords.csv",
		"organization,name,username,password\nAcme,Server,admin,secret\nAcme,Mail,root,hunter2\n")

	src, err := csvio.NewReader().Read(path)
	require.NoError(t, err)

	assert.Equal(t, "passwords.csv", src.Name)
	assert.False(t, src.HadBOM)
	assert.Equal(t, []string{"organization", "name", "username", "password"}, src.Table.Headers)
	require.Len(t, src.Table.Rows, 2)
	assert.Equal(t, "admin", src.Table.Rows[0].Get("username").Value)
	assert.Equal(t, []string{"Acme,Server,admin,secret", "Acme,Mail,root,hunter2"}, src.RawLines)
}

func TestReader_BOMDetected(t *testing.T) {
	path := writeFile(t, "data.csv", "\xEF\xBB\xBForganization,name\nAcme,Server\n")

	src, err := csvio.NewReader().Read(path)
	require.NoError(t, err)

	assert.True(t, src.HadBOM)
	assert.Equal(t, "organization", src.Table.Headers[0], "mark stripped before parsing")
}

func TestReader_ShortRowLeavesCellsAbsent(t *testing.T) {
	path := writeFile(t, "data.csv", "organization,name,notes\nAcme,Server\n")

	src, err := csvio.NewReader().Read(path)
	require.NoError(t, err)

	row := src.Table.Rows[0]
	assert.True(t, row.Get("name").Present)
	assert.False(t, row.Get("notes").Present)
}

func TestReader_WindowsLineEndings(t *testing.T) {
	path := writeFile(t, "data.csv", "organization,name\r\nAcme,Server\r\n")

	src, err := csvio.NewReader().Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Server", src.Table.Rows[0].Get("name").Value)
	assert.Equal(t, []string{"Acme,Server"}, src.RawLines)
}

func TestReader_StrayQuoteSurvivesParsing(t *testing.T) {
	path := writeFile(t, "data.csv", "organization,notes\nAcme,bad \" quote\n")

	src, err := csvio.NewReader().Read(path)
	require.NoError(t, err, "a stray quote must not abort the whole file")
	assert.Contains(t, src.Table.Rows[0].Get("notes").Value, `"`)
}

func TestReader_FatalConditions(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	latin1 := writeFile(t, "latin1.csv", "organization,name\nAcm\xe9,Server\n")

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "nope.csv"), csvio.ErrNotFound},
		{"directory", dir, csvio.ErrNotAFile},
		{"empty file", empty, csvio.ErrEmptyFile},
		{"not utf-8", latin1, csvio.ErrNotUTF8},
	}
	for _, tt := range tests {
		_, err := csvio.NewReader().Read(tt.path)
		assert.ErrorIs(t, err, tt.want, tt.name)
	}
}

func TestReader_NoHeader(t *testing.T) {
	path := writeFile(t, "blank.csv", "\n")

	_, err := csvio.NewReader().Read(path)
	assert.ErrorIs(t, err, csvio.ErrNoHeader)
}
