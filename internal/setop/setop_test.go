package setop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homier/vecmap"
)

func mustReadSet(t *testing.T, doc string) *vecmap.Set[Scalar] {
	t.Helper()

	s, err := ReadSet(strings.NewReader(doc))
	require.NoError(t, err)

	return s
}

func str(v string) Scalar {
	return Scalar{Tag: "!!str", Value: v}
}

func values(s *vecmap.Set[Scalar]) []string {
	var out []string
	for v := range s.All() {
		out = append(out, v.Value)
	}

	return out
}

func TestReadSet(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		s := mustReadSet(t, "- a\n- 1\n- a\n- b\n")
		assert.Equal(t, []string{"a", "1", "b"}, values(s))
	})

	t.Run("json", func(t *testing.T) {
		s := mustReadSet(t, `["a", 1, "a"]`)
		assert.Equal(t, []string{"a", "1"}, values(s))
	})

	t.Run("quoted and plain strings are the same", func(t *testing.T) {
		s := mustReadSet(t, "- a\n- \"a\"\n- 'a'\n")
		assert.Equal(t, 1, s.Len())
	})

	t.Run("tags tell numbers and strings apart", func(t *testing.T) {
		s := mustReadSet(t, "- 1\n- \"1\"\n")
		assert.Equal(t, 2, s.Len())
	})

	t.Run("empty document", func(t *testing.T) {
		s := mustReadSet(t, "")
		assert.True(t, s.IsEmpty())
	})

	t.Run("not a scalar", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("- a\n- {x: 1}\n"))
		require.ErrorIs(t, err, ErrNotScalar)
	})

	t.Run("not a sequence", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("a: 1\n"))
		require.Error(t, err)
	})
}

func TestApply(t *testing.T) {
	a := mustReadSet(t, "[5, 7, 19, 4]")
	b := mustReadSet(t, "[11, 2, -11, 7]")

	tests := []struct {
		op   Op
		want []string
	}{
		{OpUnion, []string{"5", "7", "19", "4", "11", "2", "-11"}},
		{OpIntersect, []string{"7"}},
		{OpDiff, []string{"5", "19", "4"}},
		{OpSymDiff, []string{"5", "19", "4", "11", "2", "-11"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := Apply(tt.op, a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values(got))
		})
	}

	_, err := Apply("cross", a, b)
	require.ErrorIs(t, err, ErrUnknownOp)
}

func TestSubset(t *testing.T) {
	a := mustReadSet(t, "[b, a]")
	b := mustReadSet(t, "[a, b, c]")

	assert.True(t, Subset(a, b))
	assert.False(t, Subset(b, a))
	assert.True(t, Subset(mustReadSet(t, ""), a))
}

func TestDedupe(t *testing.T) {
	logger, hook := test.NewNullLogger()

	doc := "a: 1\nb: [x, y]\na: 3\nc: null\nb: 5\n"
	m, err := Dedupe(strings.NewReader(doc), logger)
	require.NoError(t, err)

	assert.Equal(t, []Scalar{str("a"), str("b"), str("c")}, m.Keys().Collect())
	assert.Equal(t, 1, m.MustGet(str("a")))
	assert.Equal(t, []any{"x", "y"}, m.MustGet(str("b")))
	assert.Nil(t, m.MustGet(str("c")))
	assert.Equal(t, m.Len(), m.Capacity())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "dropping duplicate key", entries[0].Message)
	assert.Equal(t, logrus.Fields{"key": "a", "line": 3, "first": 1}, entries[0].Data)
	assert.Equal(t, logrus.Fields{"key": "b", "line": 5, "first": 2}, entries[1].Data)
}

func TestDedupe_KeysAreTagged(t *testing.T) {
	logger, hook := test.NewNullLogger()

	m, err := Dedupe(strings.NewReader("1: a\n\"1\": b\n1: c\n"), logger)
	require.NoError(t, err)

	require.Equal(t, 2, m.Len())
	assert.Equal(t, "a", m.MustGet(Scalar{Tag: "!!int", Value: "1"}))
	assert.Equal(t, "b", m.MustGet(str("1")))
	assert.Len(t, hook.AllEntries(), 1)

	// Both keys survive a round trip.
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, FormatYAML))

	again, err := Dedupe(&buf, logger)
	require.NoError(t, err)
	assert.Equal(t, m.Keys().Collect(), again.Keys().Collect())
	assert.Len(t, hook.AllEntries(), 1)
}

func TestDedupe_MergeKeys(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		keys []string
		want map[string]any
	}{
		{
			name: "merged mapping",
			doc:  "<<: {x: 1}\ny: 2\n",
			keys: []string{"x", "y"},
			want: map[string]any{"x": 1, "y": 2},
		},
		{
			name: "explicit keys win wherever they are",
			doc:  "a: 1\n<<: {a: 5, b: 5, c: 3}\nb: 2\n",
			keys: []string{"a", "c", "b"},
			want: map[string]any{"a": 1, "b": 2, "c": 3},
		},
		{
			name: "earlier merged mapping wins",
			doc:  "<<: [{a: 1}, {a: 2, b: 2}]\n",
			keys: []string{"a", "b"},
			want: map[string]any{"a": 1, "b": 2},
		},
		{
			name: "alias",
			doc:  "base: &base {host: localhost, port: 80}\nprod:\n  <<: *base\n  port: 443\n",
			keys: []string{"base", "prod"},
			want: map[string]any{
				"base": map[string]any{"host": "localhost", "port": 80},
				"prod": map[string]any{"host": "localhost", "port": 443},
			},
		},
		{
			name: "alias at the top",
			doc:  "a: &a {x: 1}\n<<: *a\n",
			keys: []string{"a", "x"},
			want: map[string]any{"a": map[string]any{"x": 1}, "x": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			m, err := Dedupe(strings.NewReader(tt.doc), logger)
			require.NoError(t, err)

			var keys []string
			got := map[string]any{}
			for k, v := range m.All() {
				keys = append(keys, k.Value)
				got[k.Value] = v
			}

			assert.Equal(t, tt.keys, keys)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, hook.AllEntries(), "merges aren't duplicates")
		})
	}
}

func TestDedupe_Verbose(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := Dedupe(strings.NewReader(`{"a": 1, "a": 2}`), logger)
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.DebugLevel, last.Level)
	assert.Equal(t, 1, last.Data["kept"])
	assert.Equal(t, 1, last.Data["dropped"])
}

func TestDedupe_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	m, err := Dedupe(strings.NewReader(""), logger)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())

	_, err = Dedupe(strings.NewReader("- a\n"), logger)
	require.ErrorIs(t, err, ErrNotMapping)

	_, err = Dedupe(strings.NewReader("? [a, b]\n: 1\n"), logger)
	require.ErrorIs(t, err, ErrNotScalar)

	_, err = Dedupe(strings.NewReader("<<: 1\n"), logger)
	require.ErrorIs(t, err, ErrBadMerge)

	_, err = Dedupe(strings.NewReader("<<: [{a: 1}, [b]]\n"), logger)
	require.ErrorIs(t, err, ErrBadMerge)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite(t *testing.T) {
	s := mustReadSet(t, "[1, b, \"3\", true]")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, s, FormatJSON))
		assert.JSONEq(t, `[1, "b", "3", true]`, buf.String())
	})

	t.Run("yaml round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, s, FormatYAML))

		got := mustReadSet(t, buf.String())
		assert.True(t, s.Equal(got))
		assert.Equal(t, values(s), values(got))
	})

	t.Run("mapping keeps its order", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		m, err := Dedupe(strings.NewReader("z: 1\na: 2\nz: 3\n"), logger)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, m, FormatYAML))
		assert.Equal(t, "z: 1\na: 2\n", buf.String())

		buf.Reset()
		require.NoError(t, Write(&buf, m, FormatJSON))
		assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": 2\n}\n", buf.String())
	})

	t.Run("json infinities and nan", func(t *testing.T) {
		s := mustReadSet(t, "[.inf, -.Inf, .nan, 1.5]")

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, s, FormatJSON))
		assert.JSONEq(t, `[".inf", "-.Inf", ".nan", 1.5]`, buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		require.ErrorIs(t, Write(&bytes.Buffer{}, s, "toml"), ErrUnknownFormat)
	})
}
