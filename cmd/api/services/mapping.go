package services

import (
	"byp-site/cmd/api/dto"
	"byp-site/cmd/api/sanitize"
	"byp-site/models"
)

// mapPost 는 콘텐츠 API 글을 공개 PostDTO 로 바꾼다.
// 제목/요약은 태그를 걷어낸 평문, 본문은 정화 + 링크 재작성된 HTML 이다.
// withContent 가 false 면 본문을 비운다(목록 응답).
func mapPost(cleaner *sanitize.Cleaner, p models.Post, withContent bool) dto.PostDTO {
	d := dto.PostDTO{
		ID:         p.ID,
		Slug:       p.Slug,
		Title:      cleaner.PlainText(p.Title.Rendered),
		Excerpt:    cleaner.PlainText(p.Excerpt.Rendered),
		Date:       p.Date.Time,
		Modified:   p.Modified.Time,
		AuthorID:   p.AuthorID(),
		Categories: p.Categories,
		Tags:       p.Tags,
		ImageURL:   p.ImageURL(),
	}
	if withContent {
		d.Content = cleaner.Clean(p.Content.Rendered)
	}
	return d
}

func mapPosts(cleaner *sanitize.Cleaner, posts []models.Post) []dto.PostDTO {
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, mapPost(cleaner, p, false))
	}
	return out
}

func mapPage(cleaner *sanitize.Cleaner, p models.Page) dto.PageDTO {
	return dto.PageDTO{
		ID:       p.ID,
		Slug:     p.Slug,
		Title:    cleaner.PlainText(p.Title.Rendered),
		Content:  cleaner.CleanParagraphs(p.Content.Rendered),
		Modified: p.Modified.Time,
	}
}

// cleanIssue 는 이슈 본문과 연결된 글 요약을 화면용으로 정리한다. 원본 슬라이스는 건드리지 않는다.
func cleanIssue(cleaner *sanitize.Cleaner, issue models.MagazineIssue) models.MagazineIssue {
	issue.Title.Rendered = cleaner.PlainText(issue.Title.Rendered)
	issue.Content.Rendered = cleaner.Clean(issue.Content.Rendered)

	assoc := make([]models.AssociatedPost, len(issue.AssociatedPosts))
	for i, ap := range issue.AssociatedPosts {
		ap.Title = cleaner.PlainText(ap.Title)
		ap.Excerpt = cleaner.PlainText(ap.Excerpt)
		assoc[i] = ap
	}
	issue.AssociatedPosts = assoc
	return issue
}

func cleanIssues(cleaner *sanitize.Cleaner, issues []models.MagazineIssue) []models.MagazineIssue {
	out := make([]models.MagazineIssue, 0, len(issues))
	for _, is := range issues {
		out = append(out, cleanIssue(cleaner, is))
	}
	return out
}
