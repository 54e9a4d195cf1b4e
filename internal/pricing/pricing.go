// Package pricing selects between an event's standard and early-bird terms.
package pricing

import (
	"html/template"
	"regexp"
	"time"
	"workshop-site/internal/data"

	"github.com/microcosm-cc/bluemonday"
)

// Resolve returns promo while the promotion is running and standard otherwise.
// The promotion is running when promoEnd is set, promo is non-zero and now is
// not after promoEnd; the end instant itself still counts as promotional.
func Resolve[T comparable](promoEnd *time.Time, standard, promo T, now time.Time) T {
	var zero T
	if promoEnd == nil || promo == zero || now.After(*promoEnd) {
		return standard
	}
	return promo
}

// Offer is the price, payment link and booking widget shown for an event at one instant.
type Offer struct {
	Fee       float64
	PayLink   string
	EmbedCode string
	Promo     bool // the early-bird fee applies
}

// ForEvent resolves every promotional field of e at now. Callers must not keep
// the result across requests.
func ForEvent(e *data.Event, now time.Time) Offer {
	return Offer{
		Fee:       Resolve(e.PromoEndDate, e.StandardFee, e.EarlyBirdFee, now),
		PayLink:   Resolve(e.PromoEndDate, e.PayLink, e.PromoPayLink, now),
		EmbedCode: Resolve(e.PromoEndDate, e.EmbedCode, e.PromoEmbedCode, now),
		Promo:     Resolve(e.PromoEndDate, false, e.EarlyBirdFee != 0, now),
	}
}

var (
	widthAttr  = regexp.MustCompile(`width="\d+"`)
	heightAttr = regexp.MustCompile(`height="\d+"`)
)

// ResizeEmbed rewrites the first numeric width and height attributes of an
// embed snippet to fit the visitor's device.
func ResizeEmbed(code string, mobile bool) string {
	width, height := `width="900px"`, `height="3500px"`
	if mobile {
		width, height = `width="100%"`, `height="5000px"`
	}
	code = replaceFirst(widthAttr, code, width)
	return replaceFirst(heightAttr, code, height)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// EmbedPolicy allows https iframes and nothing else.
func EmbedPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("iframe")
	p.AllowAttrs("src", "width", "height", "title", "frameborder", "allow", "allowfullscreen", "scrolling", "style").OnElements("iframe")
	p.AllowURLSchemes("https")
	p.RequireParseableURLs(true)
	p.AllowStyles("border", "width", "height").OnElements("iframe")
	return p
}

// Embed resizes and sanitizes an embed snippet for rendering.
func Embed(policy *bluemonday.Policy, code string, mobile bool) template.HTML {
	return template.HTML(policy.Sanitize(ResizeEmbed(code, mobile)))
}
