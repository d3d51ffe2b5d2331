package store

import (
	"context"
	"encoding/json"
	"sort"

	"golang.org/x/sync/errgroup"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/slug"
	"byp-site/internal/logger"
	"byp-site/models"
)

const defaultSectionPerPage = 6

// sectionQuery 는 MoreFromSection 결과의 캐시 키를 만든다.
type sectionQuery struct {
	Candidates []string `json:"candidates"`
	Fallback   string   `json:"fallback"`
	PerPage    int      `json:"per_page"`
}

// MoreFromSection 은 여러 태그 후보의 글을 합친 "이 섹션의 다른 글" 목록이다.
//
// 후보마다 태그 id 를 따로 확정하고(실패한 후보는 건너뜀), 겹침을 감안해 perPage 의 2배씩 받는다.
// 글 id 기준으로 중복을 제거하고(먼저 나온 쪽 유지) 발행일 내림차순으로 정렬한 뒤 perPage 개로 자른다.
// 합친 결과가 비어 있으면 fallbackCategory 이름의 카테고리 글로 대신한다.
func (s *Store) MoreFromSection(ctx context.Context, candidates []string, fallbackCategory string, perPage int, force bool) ([]models.Post, error) {
	if perPage <= 0 {
		perPage = defaultSectionPerPage
	}
	key := SectionKey(candidates, fallbackCategory, perPage)

	return load(ctx, s, &s.section, request[models.Post]{
		family: FamilySection,
		key:    key,
		flight: key,
		force:  force,
		fetch: func(ctx context.Context) ([]models.Post, error) {
			union := s.fetchTagUnion(ctx, candidates, perPage)
			if len(union) > 0 {
				return union, nil
			}
			return s.fetchFallbackCategory(ctx, fallbackCategory, perPage)
		},
	})
}

// SectionKey 는 MoreFromSection 이 엔트리에 저장하는 캐시 키다.
func SectionKey(candidates []string, fallbackCategory string, perPage int) string {
	if perPage <= 0 {
		perPage = defaultSectionPerPage
	}
	kb, _ := json.Marshal(sectionQuery{Candidates: candidates, Fallback: fallbackCategory, PerPage: perPage})
	return string(kb)
}

func (s *Store) Section() Entry[models.Post] {
	return entryOf(s, &s.section)
}

// fetchTagUnion 은 후보별 조회를 동시에 수행한다. 개별 실패는 로그만 남기고 무시한다.
func (s *Store) fetchTagUnion(ctx context.Context, candidates []string, perPage int) []models.Post {
	batches := make([][]models.Post, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range candidates {
		i, name := i, name
		g.Go(func() error {
			slugName := slug.Slugify(name)
			term, err := s.source.TagBySlug(gctx, slugName)
			if err != nil {
				logger.WarnWithFields("section tag resolution failed", logger.Fields{
					"tag":   slugName,
					"error": err.Error(),
				})
				return nil
			}
			if term == nil {
				return nil
			}
			posts, err := s.source.PostsByTagIDs(gctx, []int{term.ID}, perPage*2)
			if err != nil {
				logger.WarnWithFields("section tag posts fetch failed", logger.Fields{
					"tag":    slugName,
					"tag_id": term.ID,
					"error":  err.Error(),
				})
				return nil
			}
			batches[i] = posts
			return nil
		})
	}
	_ = g.Wait()

	return mergePosts(batches, perPage)
}

// mergePosts 는 배치 순서대로 id 중복을 제거하고 발행일 내림차순으로 정렬한 뒤 limit 개로 자른다.
func mergePosts(batches [][]models.Post, limit int) []models.Post {
	seen := make(map[int]struct{})
	var merged []models.Post
	for _, batch := range batches {
		for _, p := range batch {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			merged = append(merged, p)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date.Time)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func (s *Store) fetchFallbackCategory(ctx context.Context, name string, perPage int) ([]models.Post, error) {
	slugName := slug.Slugify(name)
	if slugName == "" {
		return []models.Post{}, nil
	}
	term, err := s.source.CategoryBySlug(ctx, slugName)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return []models.Post{}, nil
	}
	return s.source.ListPosts(ctx, contentclient.PostQuery{
		Categories: []int{term.ID},
		PerPage:    perPage,
		Embed:      true,
	})
}
