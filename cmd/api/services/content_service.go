package services

import (
	"context"
	"errors"
	"fmt"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/dto"
	"byp-site/cmd/api/sanitize"
	"byp-site/cmd/api/slug"
	"byp-site/internal/logger"
	"byp-site/models"
)

// ContentService 는 프록시 라우트(/api/*) 뒤에서 콘텐츠 API 를 호출한다.
//
// 원격 실패의 경계다. 목록 조회는 에러를 로그로 남기고 빈 목록을 돌려주며,
// 단건 조회만 ErrNotFound / 에러를 핸들러에 넘겨 404 / 500 으로 바꾸게 한다.
type ContentService struct {
	client  *contentclient.Client
	cleaner *sanitize.Cleaner
}

func NewContentService(client *contentclient.Client, cleaner *sanitize.Cleaner) *ContentService {
	return &ContentService{client: client, cleaner: cleaner}
}

// ErrNotFound 는 단건 리소스가 없을 때 반환된다.
var ErrNotFound = contentclient.ErrNotFound

func logSwallowed(op string, err error, fields logger.Fields) {
	if fields == nil {
		fields = logger.Fields{}
	}
	fields["op"] = op
	fields["error"] = err.Error()
	logger.ErrorWithFields("content api call failed, returning empty result", fields)
}

type ListPostsInput struct {
	Page       int
	PerPage    int
	Categories []int
	Tags       []int
	Author     int
	Search     string
	Slug       string
}

func (s *ContentService) ListPosts(ctx context.Context, in ListPostsInput) dto.Pagination[dto.PostDTO] {
	out := dto.Pagination[dto.PostDTO]{Data: []dto.PostDTO{}, Page: in.Page, PageSize: in.PerPage}
	page, err := s.client.ListPostsPage(ctx, contentclient.PostQuery{
		Page:       in.Page,
		PerPage:    in.PerPage,
		Categories: in.Categories,
		Tags:       in.Tags,
		Author:     in.Author,
		Search:     in.Search,
		Slug:       in.Slug,
		Embed:      true,
	})
	if err != nil {
		logSwallowed("ListPosts", err, logger.Fields{"page": in.Page})
		return out
	}
	out.Data = mapPosts(s.cleaner, page.Items)
	out.Total = page.Total
	out.TotalPages = page.TotalPages
	return out
}

// PostsTagged 는 태그 하나로 거른 목록이다. tagID 가 0 이면 tagName 을 slug 로 바꿔 태그를 찾는다.
// 일치하는 태그가 없으면 빈 목록이다. 이 경로는 원격 실패를 삼키지 않고 그대로 돌려준다.
func (s *ContentService) PostsTagged(ctx context.Context, tagID int, tagName string, perPage int) ([]dto.PostDTO, error) {
	if tagID <= 0 {
		term, err := s.client.TagBySlug(ctx, slug.Slugify(tagName))
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", tagName, err)
		}
		if term == nil {
			return []dto.PostDTO{}, nil
		}
		tagID = term.ID
	}
	posts, err := s.client.PostsByTagIDs(ctx, []int{tagID}, perPage)
	if err != nil {
		return nil, err
	}
	return mapPosts(s.cleaner, posts), nil
}

func (s *ContentService) GetPost(ctx context.Context, id int) (*dto.PostDTO, error) {
	p, err := s.client.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	d := mapPost(s.cleaner, p, true)
	return &d, nil
}

func (s *ContentService) GetPostBySlug(ctx context.Context, postSlug string) (*dto.PostDTO, error) {
	p, err := s.client.GetPostBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	d := mapPost(s.cleaner, p, true)
	return &d, nil
}

func (s *ContentService) ListTags(ctx context.Context) []models.Term {
	terms, err := s.client.ListTags(ctx)
	if err != nil {
		logSwallowed("ListTags", err, nil)
		return []models.Term{}
	}
	return terms
}

func (s *ContentService) ListCategories(ctx context.Context) []models.Term {
	terms, err := s.client.ListCategories(ctx)
	if err != nil {
		logSwallowed("ListCategories", err, nil)
		return []models.Term{}
	}
	return terms
}

func (s *ContentService) ListAuthors(ctx context.Context) []models.Author {
	authors, err := s.client.ListAuthors(ctx)
	if err != nil {
		logSwallowed("ListAuthors", err, nil)
		return []models.Author{}
	}
	return authors
}

func (s *ContentService) AuthorByUsername(ctx context.Context, username string) (*models.Author, error) {
	a, err := s.client.AuthorByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	a.Description = s.cleaner.PlainText(a.Description)
	return &a, nil
}

func (s *ContentService) PostsByAuthor(ctx context.Context, username string, page, perPage int) []dto.PostDTO {
	posts, err := s.client.PostsByAuthor(ctx, username, contentclient.PostQuery{Page: page, PerPage: perPage, Embed: true})
	if err != nil {
		if !errors.Is(err, contentclient.ErrNotFound) {
			logSwallowed("PostsByAuthor", err, logger.Fields{"username": username})
		}
		return []dto.PostDTO{}
	}
	return mapPosts(s.cleaner, posts)
}

func (s *ContentService) GetPage(ctx context.Context, pageSlug string) (*dto.PageDTO, error) {
	p, err := s.client.GetPageBySlug(ctx, pageSlug)
	if err != nil {
		return nil, err
	}
	d := mapPage(s.cleaner, p)
	return &d, nil
}

func (s *ContentService) MagazineIssues(ctx context.Context, page, perPage int) []models.MagazineIssue {
	issues, err := s.client.ListMagazineIssues(ctx, contentclient.PostQuery{Page: page, PerPage: perPage})
	if err != nil {
		logSwallowed("ListMagazineIssues", err, nil)
		return []models.MagazineIssue{}
	}
	return cleanIssues(s.cleaner, issues)
}

// LatestIssue 는 가장 최근 이슈 하나다. 이슈가 없으면 ErrNotFound 다.
func (s *ContentService) LatestIssue(ctx context.Context) (*models.MagazineIssue, error) {
	issues, err := s.client.ListMagazineIssues(ctx, contentclient.PostQuery{PerPage: 1})
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, ErrNotFound
	}
	issue := cleanIssue(s.cleaner, issues[0])
	return &issue, nil
}

func (s *ContentService) MagazineTags(ctx context.Context) []models.Term {
	terms, err := s.client.ListMagazineTags(ctx)
	if err != nil {
		logSwallowed("ListMagazineTags", err, nil)
		return []models.Term{}
	}
	return terms
}

func (s *ContentService) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}
