package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// allowedElements 는 외부에서 작성된 HTML 에서 남겨두는 태그 목록이다.
var allowedElements = []string{
	"p", "br", "em", "strong", "i", "b", "u",
	"ul", "ol", "li",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"a", "div", "span", "blockquote",
}

var (
	blockTagPattern    = regexp.MustCompile(`(?i)<(p|div|h[1-6]|ul|ol|li|blockquote|br)[\s/>]`)
	paragraphSeparator = regexp.MustCompile(`\n\s*\n`)
)

// Sanitizer 는 허용 목록 기반 HTML 정화기다.
// 허용되지 않은 태그는 이스케이프해서 보여주지 않고 제거한다. script/style 은 내용까지 버린다.
type Sanitizer struct {
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedElements...)
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("class").Globally()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("mailto", "http", "https")

	return &Sanitizer{
		policy: p,
		strict: bluemonday.StrictPolicy(),
	}
}

// Sanitize 는 허용 목록에 없는 태그와 속성을 제거한다.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

// SanitizeParagraphs 는 블록 태그가 없는 평문을 문단으로 나눈 뒤 정화한다.
// 빈 줄은 문단 경계(<p>), 단일 개행은 <br> 로 바꾼다.
// 이미 블록 태그가 있으면 그대로 정화만 한다.
func (s *Sanitizer) SanitizeParagraphs(text string) string {
	if blockTagPattern.MatchString(text) {
		return s.Sanitize(text)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	chunks := paragraphSeparator.Split(text, -1)

	var b strings.Builder
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(chunk, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return s.Sanitize(b.String())
}

// PlainText 는 모든 태그를 제거하고 엔티티를 문자로 되돌린다. 제목/요약 표시에 쓴다.
func (s *Sanitizer) PlainText(html string) string {
	return strings.TrimSpace(DecodeEntities(s.strict.Sanitize(html)))
}
