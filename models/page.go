package models

type Page struct {
	ID       int      `json:"id"`
	Slug     string   `json:"slug"`
	Title    Rendered `json:"title"`
	Content  Rendered `json:"content"`
	Modified Time     `json:"modified"`
}
