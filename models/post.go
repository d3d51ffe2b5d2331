package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Rendered 는 콘텐츠 API 의 {raw, rendered} HTML 조각이다.
type Rendered struct {
	Raw      string `json:"raw,omitempty"`
	Rendered string `json:"rendered"`
}

// Post represents an article from the content API.
// posts 는 로컬에서 수정하지 않고, 새 fetch 결과가 캐시 엔트리를 통째로 교체한다.
type Post struct {
	ID               int       `json:"id"`
	Date             Time      `json:"date"`
	Modified         Time      `json:"modified"`
	Slug             string    `json:"slug"`
	Link             string    `json:"link,omitempty"`
	Title            Rendered  `json:"title"`
	Content          Rendered  `json:"content"`
	Excerpt          Rendered  `json:"excerpt"`
	Author           AuthorRef `json:"author"`
	Categories       []int     `json:"categories"`
	Tags             []int     `json:"tags"`
	FeaturedMedia    int       `json:"featured_media"`
	FeaturedImageURL string    `json:"featured_image_url,omitempty"`
	Embedded         *Embedded `json:"_embedded,omitempty"`
}

// Embedded 는 _embed 요청 시 함께 내려오는 연관 리소스다.
type Embedded struct {
	Author        []Author `json:"author,omitempty"`
	FeaturedMedia []Media  `json:"wp:featuredmedia,omitempty"`
}

type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// AuthorID 는 작성자 숫자 id 를 숫자 필드, 중첩 객체, _embedded.author 순으로 찾는다.
// 찾지 못하면 0 을 반환한다.
func (p Post) AuthorID() int {
	if p.Author.ID > 0 {
		return p.Author.ID
	}
	if p.Embedded != nil && len(p.Embedded.Author) > 0 {
		return p.Embedded.Author[0].ID
	}
	return 0
}

// ImageURL 은 featured_image_url 이 없으면 임베드된 미디어의 source_url 을 사용한다.
func (p Post) ImageURL() string {
	if p.FeaturedImageURL != "" {
		return p.FeaturedImageURL
	}
	if p.Embedded != nil && len(p.Embedded.FeaturedMedia) > 0 {
		return p.Embedded.FeaturedMedia[0].SourceURL
	}
	return ""
}

// AuthorRef 는 author 필드가 숫자이거나 {"id": n} 객체인 두 형태를 모두 받는다.
// 직렬화할 때는 항상 숫자로 쓴다.
type AuthorRef struct {
	ID int
}

func (a *AuthorRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		a.ID = 0
		return nil
	}
	switch b[0] {
	case '{':
		var obj struct {
			ID json.Number `json:"id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("author ref: %w", err)
		}
		return a.setNumber(obj.ID)
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("author ref: %w", err)
		}
		return a.setNumber(json.Number(s))
	default:
		return a.setNumber(json.Number(b))
	}
}

func (a *AuthorRef) setNumber(n json.Number) error {
	if n == "" {
		a.ID = 0
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("author ref: %w", err)
	}
	a.ID = int(v)
	return nil
}

func (a AuthorRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ID)
}
