package models

const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
	TaxonomyMagazine = "magazine_tag"
)

// Term 은 카테고리와 태그가 공유하는 형태다. Taxonomy 로 둘을 구분한다.
type Term struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Taxonomy    string `json:"taxonomy"`
}
