package atomset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_commonAtoms(t *testing.T) {
	require.Equal(t, []string{
		"arguments", "async", "await", "break", "case", "catch", "class",
		"const", "continue", "debugger", "default", "delete", "do", "else",
		"enum", "eval", "export", "extends", "false", "finally", "for",
		"function", "if", "implements", "import", "in", "instanceof",
		"interface", "let", "new", "null", "package", "private", "protected",
		"public", "return", "static", "super", "switch", "this", "throw",
		"true", "try", "typeof", "var", "void", "while", "with", "yield",
		"use strict", "__proto__",
	}, CommonAtoms(), "expected reserved atom order")
	require.Equal(t, 51, NumCommon)

	set := New()
	for i, text := range CommonAtoms() {
		assert.Equal(t, Index(i), set.Insert(text), "expected %q to be reserved", text)
	}
	assert.Equal(t, NumCommon, set.Len(), "expected no new atoms")
}

func Test_CommonByName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Index
	}{
		{"arguments", AtomArguments},
		{"return", AtomReturn},
		{"new", AtomNew},
		{"yield", AtomYield},
		{"use_strict", AtomUseStrict},
		{"proto", AtomProto},
	} {
		t.Run(tc.name, func(t *testing.T) {
			i, ok := CommonByName(tc.name)
			require.True(t, ok, "expected %q to be known", tc.name)
			assert.Equal(t, tc.want, i)
			assert.Equal(t, tc.name, i.CommonName())
			assert.True(t, i.IsCommon())
		})
	}

	_, ok := CommonByName("use strict")
	assert.False(t, ok, "expected lookup by name, not text")
	assert.False(t, Index(NumCommon).IsCommon())
	assert.Equal(t, "", Index(NumCommon).CommonName())
}
