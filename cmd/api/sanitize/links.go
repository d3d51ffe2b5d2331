package sanitize

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const DefaultOriginHost = "wp.blackyouthproject.com"

// DefaultPages 는 원본 사이트의 최상위 페이지 slug 와 로컬 라우트의 대응표다.
var DefaultPages = map[string]string{
	"about":          "/about",
	"contact":        "/contact",
	"donate":         "/donate",
	"submissions":    "/submissions",
	"privacy-policy": "/privacy-policy",
	"terms-of-use":   "/terms",
	"magazine":       "/magazine",
	"subscribe":      "/subscribe",
	"search":         "/search",
}

// LinkRewriter 는 <a href> 가 원본 콘텐츠 도메인을 가리키면 로컬 라우트로 바꾼다.
// 다른 도메인 링크와 상대 경로는 건드리지 않는다.
type LinkRewriter struct {
	originHost string
	pages      map[string]string
}

func NewLinkRewriter(originHost string, pages map[string]string) *LinkRewriter {
	originHost = normalizeHost(originHost)
	if originHost == "" {
		originHost = DefaultOriginHost
	}
	if len(pages) == 0 {
		pages = DefaultPages
	}
	return &LinkRewriter{originHost: originHost, pages: pages}
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
}

// RewriteURL 은 href 하나를 로컬 경로로 바꾼다. 바꿀 대상이 아니면 false 를 반환한다.
//
//	/                  -> /
//	/tag/x             -> /search?tag=x
//	/category/.../x    -> /search?tag=x
//	/author/x          -> /author/x
//	/{known page}/...  -> 페이지 대응표의 로컬 라우트
//	그 외               -> /article/{마지막 segment}
func (r *LinkRewriter) RewriteURL(href string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.Host == "" {
		return "", false
	}
	if normalizeHost(u.Hostname()) != r.originHost {
		return "", false
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "/", true
	}

	first := strings.ToLower(segments[0])
	last := segments[len(segments)-1]
	switch first {
	case "wp-content", "wp-admin", "wp-json":
		// 업로드 파일이나 관리 화면은 원본 도메인 그대로 둔다.
		return "", false
	case "tag", "category":
		if len(segments) < 2 {
			return "/search", true
		}
		return "/search?tag=" + url.QueryEscape(last), true
	case "author":
		if len(segments) < 2 {
			return "/", true
		}
		return "/author/" + url.PathEscape(segments[1]), true
	}

	if route, ok := r.pages[first]; ok {
		return route, true
	}
	return "/article/" + url.PathEscape(last), true
}

// Rewrite 는 HTML 조각의 <a> 시작 태그만 다시 쓰고 나머지는 바이트 그대로 내보낸다.
// 토크나이저가 EOF 이외의 에러를 내면 입력을 그대로 반환한다.
func (r *LinkRewriter) Rewrite(fragment string) string {
	if !strings.Contains(fragment, "<a") && !strings.Contains(fragment, "<A") {
		return fragment
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	b.Grow(len(fragment))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return b.String()
			}
			return fragment
		case html.StartTagToken, html.SelfClosingTagToken:
			// Token() 이 버퍼를 건드리므로 원문을 먼저 복사해 둔다.
			raw := string(z.Raw())
			tok := z.Token()
			if tok.DataAtom == atom.A && r.rewriteAttrs(tok.Attr) {
				b.WriteString(tok.String())
				continue
			}
			b.WriteString(raw)
		default:
			b.Write(z.Raw())
		}
	}
}

func (r *LinkRewriter) rewriteAttrs(attrs []html.Attribute) bool {
	changed := false
	for i, attr := range attrs {
		if attr.Namespace != "" || attr.Key != "href" {
			continue
		}
		if local, ok := r.RewriteURL(attr.Val); ok {
			attrs[i].Val = local
			changed = true
		}
	}
	return changed
}
