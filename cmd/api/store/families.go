package store

import (
	"context"

	"byp-site/cmd/api/clients/contentclient"
	"byp-site/models"
)

const (
	FamilyPosts          = "posts"
	FamilyCategoryPosts  = "category_posts"
	FamilyTagPosts       = "tag_posts"
	FamilyAuthorPosts    = "author_posts"
	FamilyCategories     = "categories"
	FamilyTags           = "tags"
	FamilyAuthors        = "authors"
	FamilyMagazineIssues = "magazine_issues"
	FamilyMagazineTags   = "magazine_tags"
	FamilySection        = "section"
)

// -------------------- Posts --------------------

// FetchPosts 는 임의의 쿼리 조합으로 글 목록을 가져온다. 쿼리가 바뀌면 캐시 키가 달라져 다시 받는다.
func (s *Store) FetchPosts(ctx context.Context, q contentclient.PostQuery, force bool) ([]models.Post, error) {
	key := q.CacheKey()
	return load(ctx, s, &s.posts, request[models.Post]{
		family:  FamilyPosts,
		key:     key,
		flight:  key,
		force:   force,
		persist: true,
		fetch: func(ctx context.Context) ([]models.Post, error) {
			return s.source.ListPosts(ctx, q)
		},
	})
}

func (s *Store) Posts() Entry[models.Post] {
	return entryOf(s, &s.posts)
}

// -------------------- Taxonomies / authors --------------------

func (s *Store) FetchCategories(ctx context.Context, force bool) ([]models.Term, error) {
	return load(ctx, s, &s.categories, request[models.Term]{
		family:  FamilyCategories,
		force:   force,
		persist: true,
		fetch:   s.source.ListCategories,
	})
}

func (s *Store) Categories() Entry[models.Term] {
	return entryOf(s, &s.categories)
}

func (s *Store) FetchTags(ctx context.Context, force bool) ([]models.Term, error) {
	return load(ctx, s, &s.tags, request[models.Term]{
		family:  FamilyTags,
		force:   force,
		persist: true,
		fetch:   s.source.ListTags,
	})
}

func (s *Store) Tags() Entry[models.Term] {
	return entryOf(s, &s.tags)
}

func (s *Store) FetchAuthors(ctx context.Context, force bool) ([]models.Author, error) {
	return load(ctx, s, &s.authors, request[models.Author]{
		family:  FamilyAuthors,
		force:   force,
		persist: true,
		fetch:   s.source.ListAuthors,
	})
}

func (s *Store) Authors() Entry[models.Author] {
	return entryOf(s, &s.authors)
}

// -------------------- Magazine --------------------

func (s *Store) FetchMagazineIssues(ctx context.Context, q contentclient.PostQuery, force bool) ([]models.MagazineIssue, error) {
	key := q.CacheKey()
	return load(ctx, s, &s.magazineIssues, request[models.MagazineIssue]{
		family:  FamilyMagazineIssues,
		key:     key,
		flight:  key,
		force:   force,
		persist: true,
		fetch: func(ctx context.Context) ([]models.MagazineIssue, error) {
			return s.source.ListMagazineIssues(ctx, q)
		},
	})
}

func (s *Store) MagazineIssues() Entry[models.MagazineIssue] {
	return entryOf(s, &s.magazineIssues)
}

func (s *Store) FetchMagazineTags(ctx context.Context, force bool) ([]models.Term, error) {
	return load(ctx, s, &s.magazineTags, request[models.Term]{
		family:  FamilyMagazineTags,
		force:   force,
		persist: true,
		fetch:   s.source.ListMagazineTags,
	})
}

func (s *Store) MagazineTags() Entry[models.Term] {
	return entryOf(s, &s.magazineTags)
}
