package models

// Author 는 콘텐츠 API 사용자(작성자)다.
// Slug 는 username 과 같고 AvatarURLs 는 픽셀 크기("24","48","96")를 키로 쓴다.
type Author struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Link        string            `json:"link,omitempty"`
	AvatarURLs  map[string]string `json:"avatar_urls,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}
