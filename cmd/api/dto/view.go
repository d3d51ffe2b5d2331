package dto

import (
	"time"

	"byp-site/models"
)

// CacheStateDTO 는 스토어 엔트리 상태를 뷰에 노출한다.
// state: not_fetched | loading | ready | failed
type CacheStateDTO struct {
	State     string     `json:"state" example:"ready"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// ViewEntry 는 캐시된 데이터와 그 엔트리 상태를 함께 담는다.
// 실패한 경우에도 이전 데이터가 있으면 Data 에 남아 있다.
type ViewEntry[T any] struct {
	CacheStateDTO
	Data T `json:"data"`
}

type HomeViewDTO struct {
	Posts      ViewEntry[[]PostDTO]     `json:"posts"`
	Categories ViewEntry[[]models.Term] `json:"categories"`
}

type ArticleViewDTO struct {
	Post ViewEntry[*PostDTO] `json:"post"`
}

type AuthorViewDTO struct {
	Author *models.Author       `json:"author"`
	Posts  ViewEntry[[]PostDTO] `json:"posts"`
}

type TermViewDTO struct {
	Name  string               `json:"name"`
	Title string               `json:"title"`
	Posts ViewEntry[[]PostDTO] `json:"posts"`
}

type MagazineViewDTO struct {
	Issues          ViewEntry[[]models.MagazineIssue] `json:"issues"`
	Tags            ViewEntry[[]models.Term]          `json:"tags"`
	MoreFromSection ViewEntry[[]PostDTO]              `json:"more_from_section"`
}

type SubscribeRequestDTO struct {
	Email string `json:"email" binding:"required,email" example:"reader@example.com"`
}
