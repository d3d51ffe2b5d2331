package models

// MagazineIssue represents one magazine issue with its associated posts.
type MagazineIssue struct {
	ID              int              `json:"id"`
	Date            Time             `json:"date"`
	Slug            string           `json:"slug"`
	Title           Rendered         `json:"title"`
	Content         Rendered         `json:"content"`
	FeaturedMedia   int              `json:"featured_media"`
	FeaturedImage   *string          `json:"featured_image"`
	MagazineTags    []int            `json:"magazine_tag,omitempty"`
	AssociatedPosts []AssociatedPost `json:"associated_posts"`
}

// AssociatedPost 는 이슈에 딸린 가벼운 글 요약이다.
// Image 와 Author 는 fetch 시점의 보강 결과이며, 보강에 실패하면 둘 다 nil 이다.
type AssociatedPost struct {
	ID      int     `json:"id"`
	Title   string  `json:"title"`
	Slug    string  `json:"slug"`
	Excerpt string  `json:"excerpt"`
	Date    Time    `json:"date"`
	Image   *string `json:"image"`
	Author  *Author `json:"author"`
}
