// Package seed loads initial site content from a YAML file and a directory of
// markdown blog posts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/service"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Site is the content of a seed file.
type Site struct {
	Colors   map[string]string `yaml:"colors"`
	Pages    []Page            `yaml:"pages"`
	Socials  []Social          `yaml:"socials"`
	Home     Home              `yaml:"home"`
	Events   []Event           `yaml:"events"`
	Gallery  []Image           `yaml:"gallery"`
	PostsDir string            `yaml:"posts_dir"` // relative to the seed file

	Posts []*data.BlogPost `yaml:"-"`
}

type Page struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

type Social struct {
	Name   string `yaml:"name"`
	Link   string `yaml:"link"`
	Active bool   `yaml:"active"`
}

type Home struct {
	Copy  string `yaml:"copy"`
	Image string `yaml:"image"`
}

type Event struct {
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	StartDate      time.Time  `yaml:"start_date"`
	EndDate        time.Time  `yaml:"end_date"`
	Image          string     `yaml:"image"`
	PayLink        string     `yaml:"pay_link"`
	StandardFee    float64    `yaml:"standard_fee"`
	EarlyBirdFee   float64    `yaml:"early_bird_fee"`
	PromoEndDate   *time.Time `yaml:"promo_end_date"`
	PromoPayLink   string     `yaml:"promo_pay_link"`
	PromoEmbedCode string     `yaml:"promo_embed_code"`
	EmbedCode      string     `yaml:"embed_code"`
	AgeRestriction string     `yaml:"age_restriction"`
}

type Image struct {
	URL     string `yaml:"url"`
	Caption string `yaml:"caption"`
}

// postMatter is the frontmatter of a markdown blog post.
type postMatter struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
	Image    string `yaml:"image"`
	Date     string `yaml:"date"` // 2006-01-02
}

// Load reads a seed file and the markdown posts it points at.
func Load(path string) (*Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	if site.PostsDir != "" {
		dir := site.PostsDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		if site.Posts, err = loadPosts(dir); err != nil {
			return nil, err
		}
	}
	return &site, nil
}

func loadPosts(dir string) ([]*data.BlogPost, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	sort.Strings(files)

	posts := make([]*data.BlogPost, 0, len(files))
	for _, f := range files {
		p, err := loadPost(f)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func loadPost(path string) (*data.BlogPost, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open post: %w", err)
	}
	defer f.Close()

	var matter postMatter
	body, err := frontmatter.Parse(f, &matter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", path, err)
	}

	post := &data.BlogPost{
		Title:    matter.Title,
		Content:  strings.TrimSpace(string(body)),
		Category: matter.Category,
		Author:   matter.Author,
		Image:    matter.Image,
	}
	if post.Title == "" {
		post.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if matter.Date != "" {
		if post.PostDate, err = time.Parse("2006-01-02", matter.Date); err != nil {
			return nil, fmt.Errorf("invalid date in %s: %w", path, err)
		}
	}
	return post, nil
}

// Apply writes the seed content into the store. Every collection is attempted
// and the failures are returned together.
func Apply(ctx context.Context, repos service.Repositories, site *Site, now time.Time, log logger.Logger) error {
	var errs []error
	try := func(collection string, err error) {
		if err != nil {
			errs = append(errs, &service.PersistenceError{Op: "create", Collection: collection, Err: err})
		}
	}

	names := make([]string, 0, len(site.Colors))
	for name := range site.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		try("Colors", repos.Colors.Create(ctx, &data.ThemeColor{Name: name, Hex: site.Colors[name]}))
	}
	for i, p := range site.Pages {
		try("Pages", repos.Pages.Create(ctx, &data.PageDescriptor{Name: p.Name, Active: p.Active, Position: i + 1}))
	}
	for i, s := range site.Socials {
		try("Socials", repos.Socials.Create(ctx, &data.SocialLink{Name: s.Name, Link: s.Link, Active: s.Active, Position: i + 1}))
	}
	if site.Home.Copy != "" || site.Home.Image != "" {
		try("BodyCopy", repos.BodyCopy.Create(ctx, &data.BodyCopy{
			Location: service.HomeLocation,
			Copy:     site.Home.Copy,
			Image:    site.Home.Image,
		}))
	}
	for _, e := range site.Events {
		try("Events", repos.Events.Create(ctx, &data.Event{
			Name:           e.Name,
			Description:    e.Description,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Image:          e.Image,
			PayLink:        e.PayLink,
			StandardFee:    e.StandardFee,
			EarlyBirdFee:   e.EarlyBirdFee,
			PromoEndDate:   e.PromoEndDate,
			PromoPayLink:   e.PromoPayLink,
			PromoEmbedCode: e.PromoEmbedCode,
			EmbedCode:      e.EmbedCode,
			AgeRestriction: e.AgeRestriction,
		}))
	}
	for _, img := range site.Gallery {
		try("Gallery", repos.Gallery.Create(ctx, &data.GalleryImage{URL: img.URL, Caption: img.Caption}))
	}
	for _, p := range site.Posts {
		if p.PostDate.IsZero() {
			p.PostDate = now
		}
		try("BlogPosts", repos.BlogPosts.Create(ctx, p))
	}

	log.Info(fmt.Sprintf("Seeded %d colors, %d pages, %d socials, %d events, %d images and %d posts",
		len(site.Colors), len(site.Pages), len(site.Socials), len(site.Events), len(site.Gallery), len(site.Posts)))
	return errors.Join(errs...)
}
