//go:build unit

package service

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
)

func TestSortPostsNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*data.BlogPost{
		{Title: "middle", PostDate: base.AddDate(0, 1, 0)},
		{Title: "oldest", PostDate: base},
		{Title: "newest", PostDate: base.AddDate(0, 2, 0)},
	}

	SortPostsNewestFirst(posts)

	for i := 1; i < len(posts); i++ {
		if posts[i].PostDate.After(posts[i-1].PostDate) {
			t.Fatalf("posts not sorted descending at %d: %s after %s", i, posts[i].Title, posts[i-1].Title)
		}
	}
	if posts[0].Title != "newest" {
		t.Errorf("expected newest first, got %s", posts[0].Title)
	}
}

func TestBlogService_ListIsSorted(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRepository[*data.BlogPost]{docs: []*data.BlogPost{
		{ID: "a", PostDate: base},
		{ID: "b", PostDate: base.AddDate(0, 0, 3)},
		{ID: "c", PostDate: base.AddDate(0, 0, 1)},
	}}
	blog := NewBlogService(repo, nil, logger.Nop())

	posts, err := blog.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var ids []string
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	if !reflect.DeepEqual(ids, []string{"b", "c", "a"}) {
		t.Errorf("expected [b c a], got %v", ids)
	}
}

func TestBlogService_CreateStampsPostDate(t *testing.T) {
	repo := &mockRepository[*data.BlogPost]{}
	blog := NewBlogService(repo, nil, logger.Nop())
	fixed := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	blog.now = func() time.Time { return fixed }

	draft := &data.BlogPost{Title: "Kiln day", Content: "c", Category: "Studio", Author: "Ana", Image: "x.jpg"}
	if err := blog.Create(context.Background(), draft); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !repo.lastDoc.PostDate.Equal(fixed) {
		t.Errorf("expected post date %v, got %v", fixed, repo.lastDoc.PostDate)
	}
}

func TestBlogService_UpdateKeepsPostDate(t *testing.T) {
	original := time.Date(2025, 12, 24, 8, 0, 0, 0, time.UTC)
	repo := &mockRepository[*data.BlogPost]{docs: []*data.BlogPost{{ID: "p1", Title: "Old", PostDate: original}}}
	blog := NewBlogService(repo, nil, logger.Nop())

	draft := &data.BlogPost{Title: "New", Content: "c", Category: "Studio", Author: "Ana", Image: "x.jpg"}
	if err := blog.Update(context.Background(), "p1", draft); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !repo.lastDoc.PostDate.Equal(original) {
		t.Errorf("expected original post date, got %v", repo.lastDoc.PostDate)
	}
}

func TestCategories(t *testing.T) {
	posts := []*data.BlogPost{{Category: "Studio"}, {Category: "Glaze"}, {Category: "Studio"}, {Category: ""}}

	got := Categories(posts)
	want := []string{"All", "Studio", "Glaze"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if n := len(FilterByCategory(posts, "Studio")); n != 2 {
		t.Errorf("expected 2 Studio posts, got %d", n)
	}
	if n := len(FilterByCategory(posts, AllCategories)); n != len(posts) {
		t.Errorf("expected every post for All, got %d", n)
	}
}

func TestBlogService_RenderSanitizes(t *testing.T) {
	blog := NewBlogService(&mockRepository[*data.BlogPost]{}, nil, logger.Nop())
	post := &data.BlogPost{Content: "# Firing\n\n<script>alert(1)</script>\n\n**hot**"}

	if err := blog.Render(post); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := string(post.HTMLContent)
	if !strings.Contains(html, "<h1>Firing</h1>") || !strings.Contains(html, "<strong>hot</strong>") {
		t.Errorf("expected rendered markdown, got %s", html)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("expected scripts to be stripped, got %s", html)
	}
}
