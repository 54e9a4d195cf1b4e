package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"
	"time"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/storage"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// AllCategories is the blog filter that matches every post.
const AllCategories = "All"

// BlogService manages blog posts and renders their markdown.
type BlogService struct {
	*Editor[*data.BlogPost]
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewBlogService creates a BlogService. uploader may be nil.
func NewBlogService(repo Repository[*data.BlogPost], uploader storage.Uploader, log logger.Logger) *BlogService {
	return &BlogService{
		Editor: NewEditor("BlogPosts", repo, log,
			WithValidation(validateBlogPost),
			WithOrdering(SortPostsNewestFirst),
			WithUploader[*data.BlogPost](uploader),
		),
		markdown:  goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

// Create stamps the post with the current time before storing it.
func (s *BlogService) Create(ctx context.Context, draft *data.BlogPost) error {
	draft.PostDate = s.now()
	return s.Editor.Create(ctx, draft)
}

// Update keeps the original post date when the draft does not carry one.
func (s *BlogService) Update(ctx context.Context, id string, draft *data.BlogPost) error {
	if err := s.Validate(draft); err != nil {
		return err
	}
	if draft.PostDate.IsZero() {
		draft.PostDate = s.now()
		if existing, err := s.find(ctx, id); err == nil {
			draft.PostDate = existing.PostDate
		}
	}
	return s.Editor.Update(ctx, id, draft)
}

// Get returns a single post with its content rendered.
func (s *BlogService) Get(ctx context.Context, id string) (*data.BlogPost, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Render(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *BlogService) find(ctx context.Context, id string) (*data.BlogPost, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("blog post %s: %w", id, data.ErrNotFound)
}

// Render converts the post's markdown into sanitized HTML.
func (s *BlogService) Render(p *data.BlogPost) error {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(p.Content), &buf); err != nil {
		return fmt.Errorf("failed to render post %s: %w", p.ID, err)
	}
	p.HTMLContent = template.HTML(s.sanitizer.SanitizeBytes(buf.Bytes()))
	return nil
}

// SortPostsNewestFirst orders posts by descending post date.
func SortPostsNewestFirst(posts []*data.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PostDate.After(posts[j].PostDate)
	})
}

// Categories returns "All" followed by each distinct post category in first-seen order.
func Categories(posts []*data.BlogPost) []string {
	seen := map[string]bool{AllCategories: true}
	categories := []string{AllCategories}
	for _, p := range posts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// FilterByCategory returns the posts in category; "All" or "" returns every post.
func FilterByCategory(posts []*data.BlogPost, category string) []*data.BlogPost {
	if category == "" || category == AllCategories {
		return posts
	}
	var filtered []*data.BlogPost
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
