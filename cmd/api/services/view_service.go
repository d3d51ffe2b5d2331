package services

import (
	"context"
	"errors"
	"strings"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/dto"
	"byp-site/cmd/api/sanitize"
	"byp-site/cmd/api/slug"
	"byp-site/cmd/api/store"
	"byp-site/config"
	"byp-site/models"
)

const (
	viewPerPage   = 12
	issuesPerPage = 10
)

// ErrUnknownFamily 는 캐시 비우기 요청의 family 값이 올바르지 않을 때 반환된다.
var ErrUnknownFamily = errors.New("unknown cache family")

// ViewService 는 /view/* 라우트가 쓰는 화면 단위 조합이다.
// 데이터는 모두 store 를 거쳐 가져오고, 엔트리 상태(state/fetched_at/error)를 함께 내려준다.
type ViewService struct {
	store    *store.Store
	content  *ContentService
	cleaner  *sanitize.Cleaner
	magazine config.MagazineConfig
}

func NewViewService(st *store.Store, content *ContentService, cleaner *sanitize.Cleaner, magazine config.MagazineConfig) *ViewService {
	return &ViewService{store: st, content: content, cleaner: cleaner, magazine: magazine}
}

// cacheState 는 fetch 결과와 엔트리 상태를 합친다.
// 이번 호출이 성공했다면 ready, 실패했다면 엔트리에 기록된 메시지를 우선한다.
func cacheState[T any](e store.Entry[T], err error) dto.CacheStateDTO {
	st := dto.CacheStateDTO{State: e.State.String()}
	if !e.FetchedAt.IsZero() {
		t := e.FetchedAt
		st.FetchedAt = &t
	}
	if err == nil {
		st.State = store.Ready.String()
		return st
	}
	st.State = store.Failed.String()
	st.Error = e.Err
	if st.Error == "" {
		st.Error = err.Error()
	}
	return st
}

// staleData 는 실패했을 때 보여줄 이전 데이터다. 다른 쿼리로 받아온 데이터는 쓰지 않는다.
func staleData[T any](e store.Entry[T], data []T, err error, key string) []T {
	if err == nil {
		return data
	}
	if e.Key == key {
		return e.Data
	}
	return nil
}

func (s *ViewService) postsEntry(e store.Entry[models.Post], data []models.Post, err error, key string) dto.ViewEntry[[]dto.PostDTO] {
	return dto.ViewEntry[[]dto.PostDTO]{
		CacheStateDTO: cacheState(e, err),
		Data:          mapPosts(s.cleaner, staleData(e, data, err, key)),
	}
}

func termsEntry(e store.Entry[models.Term], data []models.Term, err error) dto.ViewEntry[[]models.Term] {
	terms := staleData(e, data, err, "")
	if terms == nil {
		terms = []models.Term{}
	}
	return dto.ViewEntry[[]models.Term]{CacheStateDTO: cacheState(e, err), Data: terms}
}

func (s *ViewService) Home(ctx context.Context, force bool) dto.HomeViewDTO {
	q := contentclient.PostQuery{Page: 1, PerPage: viewPerPage, Embed: true}
	posts, perr := s.store.FetchPosts(ctx, q, force)
	cats, cerr := s.store.FetchCategories(ctx, force)

	return dto.HomeViewDTO{
		Posts:      s.postsEntry(s.store.Posts(), posts, perr, q.CacheKey()),
		Categories: termsEntry(s.store.Categories(), cats, cerr),
	}
}

// Article 은 slug 로 글 하나를 찾는다. 글이 없으면 ErrNotFound, 원격 실패는 에러 그대로다.
func (s *ViewService) Article(ctx context.Context, postSlug string, force bool) (dto.ArticleViewDTO, error) {
	q := contentclient.PostQuery{Slug: postSlug, Embed: true}
	posts, err := s.store.FetchPosts(ctx, q, force)
	if err != nil {
		return dto.ArticleViewDTO{}, err
	}
	if len(posts) == 0 {
		return dto.ArticleViewDTO{}, ErrNotFound
	}
	d := mapPost(s.cleaner, posts[0], true)
	return dto.ArticleViewDTO{
		Post: dto.ViewEntry[*dto.PostDTO]{
			CacheStateDTO: cacheState(s.store.Posts(), nil),
			Data:          &d,
		},
	}, nil
}

// Author 는 작성자 레코드와 그 작성자의 글 목록이다. 작성자가 없으면 ErrNotFound 다.
func (s *ViewService) Author(ctx context.Context, username string, force bool) (dto.AuthorViewDTO, error) {
	author, err := s.content.AuthorByUsername(ctx, username)
	if err != nil {
		return dto.AuthorViewDTO{}, err
	}

	q := contentclient.PostQuery{PerPage: viewPerPage, Embed: true}
	posts, perr := s.store.FetchPostsByAuthor(ctx, username, q, force)
	return dto.AuthorViewDTO{
		Author: author,
		Posts:  s.postsEntry(s.store.AuthorPosts(username), posts, perr, q.CacheKey()),
	}, nil
}

func (s *ViewService) Category(ctx context.Context, name string, force bool) dto.TermViewDTO {
	q := contentclient.PostQuery{PerPage: viewPerPage}
	posts, err := s.store.FetchPostsByCategoryName(ctx, name, q, force)
	q.Embed = true
	return dto.TermViewDTO{
		Name:  slug.Slugify(name),
		Title: slug.Deslugify(name),
		Posts: s.postsEntry(s.store.CategoryPosts(store.NameKey(name)), posts, err, q.CacheKey()),
	}
}

func (s *ViewService) Tag(ctx context.Context, name string, force bool) dto.TermViewDTO {
	q := contentclient.PostQuery{PerPage: viewPerPage}
	posts, err := s.store.FetchPostsByTagName(ctx, name, q, force)
	q.Embed = true
	return dto.TermViewDTO{
		Name:  slug.Slugify(name),
		Title: slug.Deslugify(name),
		Posts: s.postsEntry(s.store.TagPosts(store.NameKey(name)), posts, err, q.CacheKey()),
	}
}

// Search 는 링크 재작성이 만드는 /search?tag=x 와 자유 검색어 둘 다 처리한다. tag 가 있으면 tag 가 우선이다.
func (s *ViewService) Search(ctx context.Context, query, tag string, page int, force bool) dto.TermViewDTO {
	if strings.TrimSpace(tag) != "" {
		return s.Tag(ctx, tag, force)
	}
	if page <= 0 {
		page = 1
	}
	q := contentclient.PostQuery{Page: page, PerPage: viewPerPage, Search: strings.TrimSpace(query), Embed: true}
	posts, err := s.store.FetchPosts(ctx, q, force)
	return dto.TermViewDTO{
		Name:  q.Search,
		Title: q.Search,
		Posts: s.postsEntry(s.store.Posts(), posts, err, q.CacheKey()),
	}
}

func (s *ViewService) Magazine(ctx context.Context, force bool) dto.MagazineViewDTO {
	q := contentclient.PostQuery{Page: 1, PerPage: issuesPerPage}
	issues, ierr := s.store.FetchMagazineIssues(ctx, q, force)
	tags, terr := s.store.FetchMagazineTags(ctx, force)
	more, merr := s.store.MoreFromSection(ctx, s.magazine.SectionTags, s.magazine.FallbackCategory, s.magazine.PerPage, force)
	sectionKey := store.SectionKey(s.magazine.SectionTags, s.magazine.FallbackCategory, s.magazine.PerPage)

	issueEntry := s.store.MagazineIssues()
	issueData := staleData(issueEntry, issues, ierr, q.CacheKey())
	if issueData == nil {
		issueData = []models.MagazineIssue{}
	}

	return dto.MagazineViewDTO{
		Issues: dto.ViewEntry[[]models.MagazineIssue]{
			CacheStateDTO: cacheState(issueEntry, ierr),
			Data:          cleanIssues(s.cleaner, issueData),
		},
		Tags:            termsEntry(s.store.MagazineTags(), tags, terr),
		MoreFromSection: s.postsEntry(s.store.Section(), more, merr, sectionKey),
	}
}

// ClearCache 는 family/key 에 해당하는 캐시를 비운다.
// family 가 비어 있거나 all 이면 전부, 파티션 family 에서 key 가 비어 있으면 그 family 전체다.
func (s *ViewService) ClearCache(ctx context.Context, family, key string) error {
	switch family {
	case "", "all":
		s.store.ClearAll(ctx)
	case store.FamilyPosts:
		s.store.ClearPosts()
	case store.FamilyCategoryPosts:
		if key == "" {
			s.store.ClearAllCategoryPosts()
		} else {
			s.store.ClearCategoryPosts(key)
		}
	case store.FamilyTagPosts:
		if key == "" {
			s.store.ClearAllTagPosts()
		} else {
			s.store.ClearTagPosts(key)
		}
	case store.FamilyAuthorPosts:
		if key == "" {
			s.store.ClearAllAuthorPosts()
		} else {
			s.store.ClearAuthorPosts(key)
		}
	default:
		return ErrUnknownFamily
	}
	return nil
}
