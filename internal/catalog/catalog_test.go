package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/internal/catalog"
)

func TestDefault_LoadsAndVerifies(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	require.NotEmpty(t, c.Search)
	require.NotEmpty(t, c.Balanced)
	assert.Equal(t, len(c.Search)+len(c.Balanced), c.Len())

	for _, sc := range c.Search {
		assert.NoError(t, sc.Verify(), sc.Name)
	}
	for _, bc := range c.Balanced {
		assert.NoError(t, bc.Verify(), bc.Name)
	}
}

func TestDefault_HasEmptyCases(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	var emptyItems, emptyInput bool
	for _, sc := range c.Search {
		emptyItems = emptyItems || len(sc.Items) == 0
	}
	for _, bc := range c.Balanced {
		emptyInput = emptyInput || bc.Input == ""
	}
	assert.True(t, emptyItems, "search presets must cover an empty slice")
	assert.True(t, emptyInput, "balanced presets must cover an empty string")
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unsorted": {
			doc:  "search:\n  - {name: a, target: 1, items: [3, 1], found: true}\n",
			want: catalog.ErrUnsorted,
		},
		"empty name": {
			doc:  "balanced:\n  - {input: '()', balanced: true}\n",
			want: catalog.ErrEmptyName,
		},
		"duplicate": {
			doc:  "balanced:\n  - {name: a, input: '()', balanced: true}\n  - {name: a, input: '[]', balanced: true}\n",
			want: catalog.ErrDuplicateName,
		},
		"index out of range": {
			doc:  "search:\n  - {name: a, target: 1, items: [1], found: true, index: 3}\n",
			want: catalog.ErrBadIndex,
		},
		"index on absent": {
			doc:  "search:\n  - {name: a, target: 2, items: [1], found: false, index: 0}\n",
			want: catalog.ErrBadIndex,
		},
		"unknown reason": {
			doc:  "balanced:\n  - {name: a, input: '(', balanced: false, reason: nope}\n",
			want: catalog.ErrBadReason,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := catalog.Parse([]byte("search: [::"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog: decode")
}

func TestLoad_Reader(t *testing.T) {
	c, err := catalog.Load(strings.NewReader("balanced:\n  - {name: x, input: '{}', balanced: true}\n"))
	require.NoError(t, err)
	require.Len(t, c.Balanced, 1)
	assert.Equal(t, "{}", c.Balanced[0].Input)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	doc := "search:\n  - {name: hit, target: 4, items: [1, 4, 9], found: true, index: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Search, 1)
	require.NotNil(t, c.Search[0].Index)
	assert.Equal(t, 1, *c.Search[0].Index)

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestVerify_ReportsMismatch(t *testing.T) {
	wrongIndex := 0
	sc := catalog.SearchCase{Name: "off", Target: 3, Items: []int32{1, 2, 3}, Found: true, Index: &wrongIndex}
	assert.ErrorIs(t, sc.Verify(), catalog.ErrMismatch)

	sc = catalog.SearchCase{Name: "lies", Target: 9, Items: []int32{1, 2, 3}, Found: true}
	assert.ErrorIs(t, sc.Verify(), catalog.ErrMismatch)

	bc := catalog.BalanceCase{Name: "lies", Input: "(", Balanced: true}
	assert.ErrorIs(t, bc.Verify(), catalog.ErrMismatch)

	bc = catalog.BalanceCase{Name: "reason", Input: "(", Balanced: false, Reason: "mismatched closer"}
	err := bc.Verify()
	assert.ErrorIs(t, err, catalog.ErrMismatch)
	assert.Contains(t, err.Error(), "unclosed opener")
}
