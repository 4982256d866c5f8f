package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	s := Default()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"text", "A student", "A student"},
		{"tags", "<b>bold</b> text", "bold text"},
		{"script", "<script>alert(1)</script>hi", "hi"},
		{"entities", "a & b", "a &amp; b"},
		{"unclosed", "<div><p>open", "open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Plain(tt.in))
		})
	}
}

func TestRich(t *testing.T) {
	s := Default()

	assert.Equal(t, "<p>Hello <em>world</em></p>", s.Rich("<p>Hello <em>world</em></p>"))
	assert.Equal(t, "<b>hi</b>", s.Rich(`<b onclick="steal()">hi</b>`))
	assert.Equal(t, "<b>ok</b>", s.Rich("<script>alert(1)</script><b>ok</b>"))
	assert.Equal(t, "", s.Rich(""))
}

func TestIdempotence(t *testing.T) {
	s := Default()
	inputs := []string{
		"",
		"plain words",
		"a & b < c",
		"<b>bold</b><script>alert(1)</script>",
		`<a href="https://example.com" onmouseover="x()">link</a>`,
		"<ul><li>one<li>two</ul>",
		"<p>unterminated <em>markup",
		"&lt;already escaped&gt;",
	}
	for _, in := range inputs {
		once := s.Plain(in)
		assert.Equal(t, once, s.Plain(once), "plain(%q)", in)

		once = s.Rich(in)
		assert.Equal(t, once, s.Rich(once), "rich(%q)", in)
	}
}

func TestMarkdown(t *testing.T) {
	s := Default()

	out := s.Markdown("Returns **all** students.")
	assert.Contains(t, out, "<strong>all</strong>")
	assert.Contains(t, out, "<p>")

	out = s.Markdown("click <a href=\"#\" onclick=\"evil()\">here</a>")
	assert.NotContains(t, out, "onclick")
}

func TestPointerVariantsPreserveAbsence(t *testing.T) {
	s := Default()

	assert.Nil(t, s.PlainPtr(nil))
	assert.Nil(t, s.RichPtr(nil))

	empty := ""
	require.NotNil(t, s.PlainPtr(&empty))
	assert.Equal(t, "", *s.PlainPtr(&empty))

	text := "<i>x</i>"
	assert.Equal(t, "x", *s.PlainPtr(&text))
	assert.Equal(t, "<i>x</i>", *s.RichPtr(&text))
}

func TestWithCache(t *testing.T) {
	s, err := New(WithCache(16))
	require.NoError(t, err)
	require.NotNil(t, s.cache)

	first := s.Rich("<b>x</b><script>y</script>")
	assert.Equal(t, "<b>x</b>", first)
	assert.Equal(t, 1, s.cache.Len())

	// Plain and rich results of the same text are cached separately.
	assert.Equal(t, "x", s.Plain("<b>x</b><script>y</script>"))
	assert.Equal(t, 2, s.cache.Len())
	assert.Equal(t, first, s.Rich("<b>x</b><script>y</script>"))
	assert.Equal(t, 2, s.cache.Len())

	_, err = New(WithCache(0))
	require.Error(t, err)
}
