package dto

import "time"

// PostDTO 는 뷰 라우트가 내려주는 글 요약이다.
// Title/Excerpt 는 태그를 제거한 평문이고 Content 는 정화 + 링크 재작성된 HTML 이다.
// 목록 응답에서는 Content 를 비운다.
type PostDTO struct {
	ID         int       `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content,omitempty"`
	Date       time.Time `json:"date"`
	Modified   time.Time `json:"modified"`
	AuthorID   int       `json:"author_id"`
	Categories []int     `json:"categories"`
	Tags       []int     `json:"tags"`
	ImageURL   string    `json:"image_url,omitempty"`
}

type PageDTO struct {
	ID       int       `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Modified time.Time `json:"modified"`
}
