package store

import (
	"context"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/cmd/api/slug"
	"byp-site/internal/logger"
	"byp-site/models"
)

// 파티션 키. 숫자 id 로 조회한 파티션과 이름으로 조회한 파티션을 구분한다.
func IDKey(id int) string { return "id:" + strconv.Itoa(id) }
func NameKey(name string) string { return "slug:" + slug.Slugify(name) }

// partition 은 파티션 슬롯을 찾거나 새로 만든다.
func (s *Store) partition(c *lru.Cache[string, *slot[models.Post]], key string) *slot[models.Post] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := c.Get(key); ok {
		return sl
	}
	sl := &slot[models.Post]{}
	c.Add(key, sl)
	return sl
}

func (s *Store) partitionEntry(c *lru.Cache[string, *slot[models.Post]], key string) Entry[models.Post] {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := c.Peek(key)
	if !ok {
		return Entry[models.Post]{}
	}
	return sl.snapshot()
}

func (s *Store) fetchPartition(ctx context.Context, c *lru.Cache[string, *slot[models.Post]], family, partKey string, q contentclient.PostQuery, force bool, fetch func(ctx context.Context) ([]models.Post, error)) ([]models.Post, error) {
	key := q.CacheKey()
	return load(ctx, s, s.partition(c, partKey), request[models.Post]{
		family: family,
		key:    key,
		flight: partKey + "|" + key,
		force:  force,
		fetch:  fetch,
	})
}

// -------------------- Category --------------------

func (s *Store) FetchPostsByCategory(ctx context.Context, id int, q contentclient.PostQuery, force bool) ([]models.Post, error) {
	q.Categories = []int{id}
	q.Embed = true
	return s.fetchPartition(ctx, s.categoryPosts, FamilyCategoryPosts, IDKey(id), q, force, func(ctx context.Context) ([]models.Post, error) {
		return s.source.ListPosts(ctx, q)
	})
}

// FetchPostsByCategoryName 은 이름을 slug 로 바꿔 카테고리를 찾은 뒤 숫자 id 로 글을 조회한다.
// 일치하는 카테고리가 없으면 에러가 아니라 빈 목록이다.
func (s *Store) FetchPostsByCategoryName(ctx context.Context, name string, q contentclient.PostQuery, force bool) ([]models.Post, error) {
	slugName := slug.Slugify(name)
	if slugName == "" {
		return []models.Post{}, nil
	}
	q.Embed = true
	return s.fetchPartition(ctx, s.categoryPosts, FamilyCategoryPosts, NameKey(name), q, force, func(ctx context.Context) ([]models.Post, error) {
		term, err := s.source.CategoryBySlug(ctx, slugName)
		if err != nil {
			return nil, err
		}
		if term == nil {
			return []models.Post{}, nil
		}
		q.Categories = []int{term.ID}
		return s.source.ListPosts(ctx, q)
	})
}

// CategoryPosts 는 IDKey/NameKey 로 만든 파티션 키의 엔트리를 돌려준다.
func (s *Store) CategoryPosts(key string) Entry[models.Post] {
	return s.partitionEntry(s.categoryPosts, key)
}

// -------------------- Tag --------------------

func (s *Store) FetchPostsByTag(ctx context.Context, id int, q contentclient.PostQuery, force bool) ([]models.Post, error) {
	q.Tags = []int{id}
	q.Embed = true
	return s.fetchPartition(ctx, s.tagPosts, FamilyTagPosts, IDKey(id), q, force, func(ctx context.Context) ([]models.Post, error) {
		return s.source.ListPosts(ctx, q)
	})
}

// FetchPostsByTagName 은 FetchPostsByCategoryName 의 태그 버전이다.
func (s *Store) FetchPostsByTagName(ctx context.Context, name string, q contentclient.PostQuery, force bool) ([]models.Post, error) {
	slugName := slug.Slugify(name)
	if slugName == "" {
		return []models.Post{}, nil
	}
	q.Embed = true
	return s.fetchPartition(ctx, s.tagPosts, FamilyTagPosts, NameKey(name), q, force, func(ctx context.Context) ([]models.Post, error) {
		term, err := s.source.TagBySlug(ctx, slugName)
		if err != nil {
			return nil, err
		}
		if term == nil {
			return []models.Post{}, nil
		}
		q.Tags = []int{term.ID}
		return s.source.ListPosts(ctx, q)
	})
}

func (s *Store) TagPosts(key string) Entry[models.Post] {
	return s.partitionEntry(s.tagPosts, key)
}

// -------------------- Author --------------------

func (s *Store) FetchPostsByAuthor(ctx context.Context, username string, q contentclient.PostQuery, force bool) ([]models.Post, error) {
	return s.fetchPartition(ctx, s.authorPosts, FamilyAuthorPosts, username, q, force, func(ctx context.Context) ([]models.Post, error) {
		return s.source.PostsByAuthor(ctx, username, q)
	})
}

func (s *Store) AuthorPosts(username string) Entry[models.Post] {
	return s.partitionEntry(s.authorPosts, username)
}

// -------------------- Clear --------------------

// removeKey 는 숫자 id 문자열, 이름, 이미 만들어진 파티션 키 중 무엇이 와도 해당 파티션을 지운다.
func removeKey(c *lru.Cache[string, *slot[models.Post]], key string) {
	c.Remove(key)
	if id, err := strconv.Atoi(key); err == nil {
		c.Remove(IDKey(id))
	}
	c.Remove(NameKey(key))
}

func (s *Store) ClearCategoryPosts(key string) { removeKey(s.categoryPosts, key) }
func (s *Store) ClearAllCategoryPosts() { s.categoryPosts.Purge() }
func (s *Store) ClearTagPosts(key string) { removeKey(s.tagPosts, key) }
func (s *Store) ClearAllTagPosts() { s.tagPosts.Purge() }
func (s *Store) ClearAuthorPosts(username string) { s.authorPosts.Remove(username) }
func (s *Store) ClearAllAuthorPosts() { s.authorPosts.Purge() }

// reset 은 엔트리를 비우고 순번을 올려 진행 중인 응답이 비운 엔트리를 다시 채우지 못하게 한다.
func reset[T any](sl *slot[T]) {
	sl.seq++
	sl.entry = Entry[T]{}
}

func (s *Store) ClearPosts() {
	s.mu.Lock()
	reset(&s.posts)
	s.mu.Unlock()
}

// ClearAll 은 모든 엔트리와 파티션, 저장된 스냅샷까지 지운다.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	reset(&s.posts)
	reset(&s.categories)
	reset(&s.tags)
	reset(&s.authors)
	reset(&s.magazineIssues)
	reset(&s.magazineTags)
	reset(&s.section)
	s.mu.Unlock()

	s.categoryPosts.Purge()
	s.tagPosts.Purge()
	s.authorPosts.Purge()

	if s.storage != nil {
		if err := s.storage.Clear(ctx); err != nil {
			logger.WarnWithFields("store snapshot clear failed", logger.Fields{
				"backend": s.storage.Name(),
				"error":   err.Error(),
			})
		}
	}
}
