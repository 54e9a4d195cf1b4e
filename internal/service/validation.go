package service

import (
	"regexp"
	"workshop-site/internal/data"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func validateColor(c *data.ThemeColor) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Hex, validation.Required, validation.Match(hexColor).Error("must be a hex color such as #ea154a")),
	)
}

func validatePage(p *data.PageDescriptor) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
	)
}

func validateSocial(s *data.SocialLink) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Link, validation.Required, is.URL),
	)
}

func validateBlogPost(p *data.BlogPost) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.Author, validation.Required),
		validation.Field(&p.Image, validation.Required),
	)
}

func validateEvent(e *data.Event) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Description, validation.Required),
		validation.Field(&e.StartDate, validation.Required),
		validation.Field(&e.EndDate, validation.Required,
			validation.When(!e.StartDate.IsZero(), validation.Min(e.StartDate).Error("must not be before the start date"))),
		validation.Field(&e.StandardFee, validation.Required, validation.Min(0.0)),
		validation.Field(&e.EarlyBirdFee, validation.Min(0.0)),
		validation.Field(&e.PayLink, validation.Required, is.URL),
		validation.Field(&e.PromoPayLink, is.URL),
		validation.Field(&e.AgeRestriction, validation.Required),
		validation.Field(&e.EmbedCode, validation.Required),
	)
}

func validateGalleryImage(g *data.GalleryImage) error {
	return validation.ValidateStruct(g,
		validation.Field(&g.URL, validation.Required),
		validation.Field(&g.Caption, validation.Required),
	)
}
