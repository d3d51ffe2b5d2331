package sanitize

import "strings"

// entityReplacer 는 콘텐츠 API 가 실제로 내보내는 엔티티만 다루는 고정 테이블이다.
// 테이블에 없는 엔티티는 그대로 남는다.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&#038;", "&",
	"&#38;", "&",
	"&lt;", "<",
	"&#060;", "<",
	"&gt;", ">",
	"&#062;", ">",
	"&quot;", `"`,
	"&#034;", `"`,
	"&#34;", `"`,
	"&#39;", "'",
	"&#039;", "'",
	"&#x27;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&#160;", " ",
	"&#233;", "é",
	"&eacute;", "é",
	"&#8211;", "–",
	"&ndash;", "–",
	"&#8212;", "—",
	"&mdash;", "—",
	"&#8216;", "‘",
	"&lsquo;", "‘",
	"&#8217;", "’",
	"&rsquo;", "’",
	"&#8220;", "“",
	"&ldquo;", "“",
	"&#8221;", "”",
	"&rdquo;", "”",
	"&#8230;", "…",
	"&hellip;", "…",
	"&#8242;", "′",
	"&#8243;", "″",
)

// DecodeEntities 는 고정 테이블의 HTML 엔티티를 문자로 바꾼다.
// 한 번만 치환하므로 "&amp;lt;" 는 "&lt;" 가 된다.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}
