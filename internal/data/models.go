package data

import (
	"html/template"
	"time"
)

// Document is implemented by every stored entity; ids are assigned by the store.
type Document interface {
	GetID() string
	SetID(id string)
}

// PageDescriptor is an operator-controlled toggle for one public panel.
type PageDescriptor struct {
	ID       string `db:"id" firestore:"-" json:"id"`
	Name     string `db:"name" firestore:"Name" json:"name"`
	Active   bool   `db:"active" firestore:"Active" json:"active"`
	Position int    `db:"position" firestore:"Position" json:"position"`
}

// SocialLink is a social network profile shown in the navigation and link bar.
type SocialLink struct {
	ID       string `db:"id" firestore:"-" json:"id"`
	Name     string `db:"name" firestore:"Name" json:"name"`
	Link     string `db:"link" firestore:"Link" json:"link"`
	Active   bool   `db:"active" firestore:"Active" json:"active"`
	Position int    `db:"position" firestore:"Position" json:"position"`
}

// ThemeColor is one semantic color of the site theme.
type ThemeColor struct {
	ID   string `db:"id" firestore:"-" json:"id"`
	Name string `db:"name" firestore:"Color" json:"name"`
	Hex  string `db:"hex" firestore:"Hex" json:"hex"`
}

// ThemeColors maps semantic color names ("primary", "white", ...) to hex values.
type ThemeColors map[string]string

// Colors folds a color collection into a ThemeColors mapping.
func Colors(list []*ThemeColor) ThemeColors {
	colors := make(ThemeColors, len(list))
	for _, c := range list {
		colors[c.Name] = c.Hex
	}
	return colors
}

// BodyCopy is a block of editable site copy located by tag, e.g. "home".
type BodyCopy struct {
	ID       string `db:"id" firestore:"-" json:"id"`
	Location string `db:"location" firestore:"Location" json:"location"`
	Copy     string `db:"copy" firestore:"Copy" json:"copy"`
	Image    string `db:"image" firestore:"Image" json:"image"`
}

// BlogPost represents a single post on the blog panel.
type BlogPost struct {
	ID          string        `db:"id" firestore:"-" json:"id"`
	Title       string        `db:"title" firestore:"PostTitle" json:"title"`
	Content     string        `db:"content" firestore:"PostContent" json:"content"`
	HTMLContent template.HTML `db:"-" firestore:"-" json:"-"`
	Category    string        `db:"category" firestore:"PostCategory" json:"category"`
	Author      string        `db:"author" firestore:"PostAuthor" json:"author"`
	Image       string        `db:"image" firestore:"PostImage" json:"image"`
	PostDate    time.Time     `db:"post_date" firestore:"PostDate" json:"postDate"`
}

// Event is a bookable workshop with an optional early-bird promotion.
type Event struct {
	ID             string     `db:"id" firestore:"-" json:"id"`
	Name           string     `db:"name" firestore:"Name" json:"name"`
	Description    string     `db:"description" firestore:"Description" json:"description"`
	StartDate      time.Time  `db:"start_date" firestore:"StartDate" json:"startDate"`
	EndDate        time.Time  `db:"end_date" firestore:"EndDate" json:"endDate"`
	Image          string     `db:"image" firestore:"Image" json:"image"`
	PayLink        string     `db:"pay_link" firestore:"PayLink" json:"payLink"`
	StandardFee    float64    `db:"standard_fee" firestore:"StandardFee" json:"standardFee"`
	EarlyBirdFee   float64    `db:"early_bird_fee" firestore:"EarlyBirdFee" json:"earlyBirdFee"`
	PromoEndDate   *time.Time `db:"promo_end_date" firestore:"PromoEndDate" json:"promoEndDate"`
	PromoPayLink   string     `db:"promo_pay_link" firestore:"PromoPayLink" json:"promoPayLink"`
	PromoEmbedCode string     `db:"promo_embed_code" firestore:"PromoEmbedCode" json:"promoEmbedCode"`
	EmbedCode      string     `db:"embed_code" firestore:"EmbedCode" json:"embedCode"`
	AgeRestriction string     `db:"age_restriction" firestore:"AgeRestriction" json:"ageRestriction"`
}

// GalleryImage is an uploaded picture with its caption.
type GalleryImage struct {
	ID      string `db:"id" firestore:"-" json:"id"`
	URL     string `db:"url" firestore:"URL" json:"url"`
	Caption string `db:"caption" firestore:"Caption" json:"caption"`
}

// Operator is a user of the admin dashboard.
type Operator struct {
	ID           string `db:"id" firestore:"-" json:"id"`
	Name         string `db:"name" firestore:"Name" json:"name"`
	Email        string `db:"email" firestore:"email" json:"email"`
	PasswordHash string `db:"password_hash" firestore:"password" json:"-"`
}

func (p *PageDescriptor) GetID() string   { return p.ID }
func (p *PageDescriptor) SetID(id string) { p.ID = id }
func (s *SocialLink) GetID() string       { return s.ID }
func (s *SocialLink) SetID(id string)     { s.ID = id }
func (c *ThemeColor) GetID() string       { return c.ID }
func (c *ThemeColor) SetID(id string)     { c.ID = id }
func (b *BodyCopy) GetID() string         { return b.ID }
func (b *BodyCopy) SetID(id string)       { b.ID = id }
func (p *BlogPost) GetID() string         { return p.ID }
func (p *BlogPost) SetID(id string)       { p.ID = id }
func (e *Event) GetID() string            { return e.ID }
func (e *Event) SetID(id string)          { e.ID = id }
func (g *GalleryImage) GetID() string     { return g.ID }
func (g *GalleryImage) SetID(id string)   { g.ID = id }
func (o *Operator) GetID() string         { return o.ID }
func (o *Operator) SetID(id string)       { o.ID = id }
