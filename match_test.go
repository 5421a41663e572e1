// FILE: lixenwraith/configurator/match_test.go
package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchArg tests token recognition against argument aliases
func TestMatchArg(t *testing.T) {
	tests := []struct {
		name     string
		variable Variable
		args     []string
		expected Match
	}{
		{"DoubleDashInline", Variable{Name: "name"}, []string{"--name=alice"}, Match{Found: true, Index: 0, Value: "alice", HasValue: true}},
		{"SingleDashColon", Variable{Name: "name"}, []string{"-name:bob"}, Match{Found: true, Index: 0, Value: "bob", HasValue: true}},
		{"PlusPrefix", Variable{Name: "name"}, []string{"+name=x"}, Match{Found: true, Index: 0, Value: "x", HasValue: true}},
		{"SlashPrefix", Variable{Name: "name"}, []string{"/name:x"}, Match{Found: true, Index: 0, Value: "x", HasValue: true}},
		{"MixedPrefixes", Variable{Name: "name"}, []string{"-+/name"}, Match{Found: true, Index: 0}},
		{"CaseInsensitive", Variable{Name: "name"}, []string{"--NAME=Alice"}, Match{Found: true, Index: 0, Value: "Alice", HasValue: true}},
		{"NoInlineValue", Variable{Name: "count"}, []string{"-count", "7"}, Match{Found: true, Index: 0}},
		{"EmptyInlineValue", Variable{Name: "name"}, []string{"--name="}, Match{Found: true, Index: 0, Value: "", HasValue: true}},
		{"ValueWithSeparators", Variable{Name: "url"}, []string{"--url=http://host:80/?a=b"}, Match{Found: true, Index: 0, Value: "http://host:80/?a=b", HasValue: true}},
		{"ExplicitAlias", Variable{Name: "moduleName", Options: Options{Arg: "module"}}, []string{"--module=Core"}, Match{Found: true, Index: 0, Value: "Core", HasValue: true}},
		{"NameIgnoredWhenAliased", Variable{Name: "moduleName", Options: Options{Arg: "module"}}, []string{"--moduleName=Core"}, Match{Index: -1}},
		{"FirstMatchWins", Variable{Name: "name"}, []string{"x", "--name=a", "--name=b"}, Match{Found: true, Index: 1, Value: "a", HasValue: true}},
		{"NoPrefix", Variable{Name: "name"}, []string{"name=alice"}, Match{Index: -1}},
		{"LongerToken", Variable{Name: "name"}, []string{"--names=a"}, Match{Index: -1}},
		{"ShorterToken", Variable{Name: "name"}, []string{"--nam"}, Match{Index: -1}},
		{"Disabled", Variable{Name: "name", Options: Options{Arg: Disabled}}, []string{"--name=alice"}, Match{Index: -1}},
		{"EmptyArgs", Variable{Name: "name"}, nil, Match{Index: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchArg(tt.variable, tt.args))
		})
	}
}

// TestMatchArgMetacharacters tests that aliases are compared literally
func TestMatchArgMetacharacters(t *testing.T) {
	v := Variable{Name: "a.b"}

	assert.False(t, MatchArg(v, []string{"--aXb=1"}).Found)
	assert.True(t, MatchArg(v, []string{"--a.b=1"}).Found)

	v = Variable{Name: "x", Options: Options{Arg: "(x|y)+"}}
	assert.False(t, MatchArg(v, []string{"--y"}).Found)
	assert.True(t, MatchArg(v, []string{"--(x|y)+"}).Found)
}

// TestArgValue tests raw value extraction from a match
func TestArgValue(t *testing.T) {
	t.Run("BoolPresence", func(t *testing.T) {
		value, ok := argValue(Variable{Name: "verbose", Kind: KindBool}, []string{"--verbose"})
		assert.True(t, ok)
		assert.Equal(t, true, value)
	})

	t.Run("BoolInline", func(t *testing.T) {
		value, ok := argValue(Variable{Name: "verbose", Kind: KindBool}, []string{"--verbose=false"})
		assert.True(t, ok)
		assert.Equal(t, "false", value)
	})

	t.Run("PositionalValue", func(t *testing.T) {
		value, ok := argValue(Variable{Name: "count", Kind: KindNum}, []string{"-count", "7"})
		assert.True(t, ok)
		assert.Equal(t, "7", value)
	})

	t.Run("PositionalTakesNextTokenVerbatim", func(t *testing.T) {
		value, ok := argValue(Variable{Name: "name"}, []string{"--name", "--other"})
		assert.True(t, ok)
		assert.Equal(t, "--other", value)
	})

	t.Run("LastTokenWithoutValue", func(t *testing.T) {
		_, ok := argValue(Variable{Name: "name"}, []string{"--name"})
		assert.False(t, ok)
	})

	t.Run("NotPresent", func(t *testing.T) {
		_, ok := argValue(Variable{Name: "name"}, []string{"--other=1"})
		assert.False(t, ok)
	})
}
