package sanitize

// Cleaner 는 서버 렌더 경로에서 쓰는 정화 + 링크 재작성 조합이다.
type Cleaner struct {
	*Sanitizer
	links *LinkRewriter
}

func NewCleaner(originHost string, pages map[string]string) *Cleaner {
	return &Cleaner{
		Sanitizer: NewSanitizer(),
		links:     NewLinkRewriter(originHost, pages),
	}
}

// Clean 은 HTML 을 정화한 뒤 원본 도메인 링크를 로컬 라우트로 바꾼다.
func (c *Cleaner) Clean(html string) string {
	return c.links.Rewrite(c.Sanitize(html))
}

// CleanParagraphs 는 Clean 의 문단 보존 버전이다.
func (c *Cleaner) CleanParagraphs(text string) string {
	return c.links.Rewrite(c.SanitizeParagraphs(text))
}
