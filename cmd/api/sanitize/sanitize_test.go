package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsDisallowedContent(t *testing.T) {
	s := NewSanitizer()

	assert.Equal(t, "<p>ok</p>", s.Sanitize("<script>alert(1)</script><p>ok</p>"))
	assert.Equal(t, `<a href="/x" class="c">x</a>`, s.Sanitize(`<a href="/x" onclick="evil()" class="c">x</a>`))
	assert.Equal(t, "<p>styled</p>", s.Sanitize(`<style>p{color:red}</style><p style="color:red">styled</p>`))

	got := s.Sanitize(`<div class="wrap"><img src="x.png"><iframe src="y"></iframe><em>kept</em></div>`)
	assert.Equal(t, `<div class="wrap"><em>kept</em></div>`, got)
}

func TestSanitizeDropsScriptURLs(t *testing.T) {
	s := NewSanitizer()
	got := s.Sanitize(`<a href="javascript:alert(1)">bad</a>`)
	assert.NotContains(t, got, "javascript")
	assert.Contains(t, got, "bad")
}

func TestSanitizeParagraphs(t *testing.T) {
	s := NewSanitizer()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "blank lines become paragraphs",
			in:   "first\n\nsecond",
			want: "<p>first</p><p>second</p>",
		},
		{
			name: "single newline becomes line break",
			in:   "line one\nline two",
			want: "<p>line one<br>line two</p>",
		},
		{
			name: "existing block tags are kept as-is",
			in:   "<p>already</p>\n\n<p>html</p>",
			want: "<p>already</p>\n\n<p>html</p>",
		},
		{
			name: "windows newlines",
			in:   "a\r\n\r\nb",
			want: "<p>a</p><p>b</p>",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, s.SanitizeParagraphs(testCase.in))
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, "Café & Bar", DecodeEntities("Caf&#233; &amp; Bar"))
	assert.Equal(t, "“quoted” – done…", DecodeEntities("&#8220;quoted&#8221; &#8211; done&hellip;"))
	assert.Equal(t, "&unknown; stays", DecodeEntities("&unknown; stays"))
	assert.Equal(t, "&lt;", DecodeEntities("&amp;lt;"))
}

func TestPlainText(t *testing.T) {
	s := NewSanitizer()
	assert.Equal(t, "Café & Bar", s.PlainText("<strong>Caf&#233;</strong> &amp; Bar"))
}

func TestRewriteURL(t *testing.T) {
	r := NewLinkRewriter("", nil)

	testCases := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{"https://wp.blackyouthproject.com/category/politics", "/search?tag=politics", true},
		{"https://wp.blackyouthproject.com/category/news/politics/", "/search?tag=politics", true},
		{"https://wp.blackyouthproject.com/tag/justice", "/search?tag=justice", true},
		{"https://wp.blackyouthproject.com/author/jdoe", "/author/jdoe", true},
		{"https://wp.blackyouthproject.com/some-post-slug", "/article/some-post-slug", true},
		{"https://wp.blackyouthproject.com/2024/01/02/dated-slug/", "/article/dated-slug", true},
		{"https://WWW.wp.blackyouthproject.com/about/", "/about", true},
		{"https://wp.blackyouthproject.com/", "/", true},
		{"https://wp.blackyouthproject.com", "/", true},
		{"https://wp.blackyouthproject.com/wp-content/uploads/a.pdf", "", false},
		{"https://example.com/some-post-slug", "", false},
		{"/relative/path", "", false},
	}

	for _, testCase := range testCases {
		got, ok := r.RewriteURL(testCase.href)
		assert.Equal(t, testCase.wantOK, ok, testCase.href)
		assert.Equal(t, testCase.want, got, testCase.href)
	}
}

func TestRewriteFragment(t *testing.T) {
	r := NewLinkRewriter("wp.blackyouthproject.com", nil)

	in := `<p>See <a href="https://wp.blackyouthproject.com/category/politics">politics</a> and ` +
		`<a href="https://wp.blackyouthproject.com/author/jdoe" class="x">jdoe</a> or ` +
		`<a href="https://wp.blackyouthproject.com/some-post-slug">this</a> ` +
		`<a href="https://other.org/a">elsewhere</a>.</p>`
	got := r.Rewrite(in)

	assert.Contains(t, got, `<a href="/search?tag=politics">politics</a>`)
	assert.Contains(t, got, `<a href="/author/jdoe" class="x">jdoe</a>`)
	assert.Contains(t, got, `<a href="/article/some-post-slug">this</a>`)
	assert.Contains(t, got, `<a href="https://other.org/a">elsewhere</a>`)
	assert.True(t, strings.HasPrefix(got, "<p>See "))
	assert.True(t, strings.HasSuffix(got, ".</p>"))
}

func TestRewriteLeavesOtherMarkupUntouched(t *testing.T) {
	r := NewLinkRewriter("", nil)
	in := "<div class='keep'>text &amp; more<br/><A HREF='https://other.org/x'>x</A></div><!-- c -->"
	assert.Equal(t, in, r.Rewrite(in))
}

func TestCleanerCleansThenRewrites(t *testing.T) {
	c := NewCleaner("", nil)
	got := c.Clean(`<script>x()</script><p><a href="https://wp.blackyouthproject.com/tag/art" onclick="y()">art</a></p>`)
	assert.Equal(t, `<p><a href="/search?tag=art">art</a></p>`, got)
}
