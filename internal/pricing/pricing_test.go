//go:build unit

package pricing

import (
	"strings"
	"testing"
	"time"
	"workshop-site/internal/data"
)

func TestResolve(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	testCases := []struct {
		name     string
		promoEnd *time.Time
		promo    string
		want     string
	}{
		{"no promo end", nil, "promo", "standard"},
		{"promo ended", &past, "promo", "standard"},
		{"promo running", &future, "promo", "promo"},
		{"promo running without value", &future, "", "standard"},
		{"promo ends this instant", &now, "promo", "promo"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.promoEnd, "standard", tc.promo, now); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestForEvent_EarlyBirdFee(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	event := &data.Event{
		StandardFee:    50,
		EarlyBirdFee:   35,
		PayLink:        "https://pay.example.com/standard",
		PromoPayLink:   "https://pay.example.com/early",
		EmbedCode:      "standard-embed",
		PromoEmbedCode: "",
	}

	event.PromoEndDate = &yesterday
	if offer := ForEvent(event, now); offer.Fee != 50 || offer.Promo {
		t.Errorf("expected standard fee 50 after the promo, got %+v", offer)
	}

	event.PromoEndDate = &tomorrow
	offer := ForEvent(event, now)
	if offer.Fee != 35 || !offer.Promo {
		t.Errorf("expected early bird fee 35 during the promo, got %+v", offer)
	}
	if offer.PayLink != "https://pay.example.com/early" {
		t.Errorf("expected promo pay link, got %s", offer.PayLink)
	}
	if offer.EmbedCode != "standard-embed" {
		t.Errorf("expected standard embed when no promo embed is set, got %s", offer.EmbedCode)
	}
}

func TestResizeEmbed(t *testing.T) {
	code := `<iframe src="https://tickets.example.com/e/1" width="600" height="400"></iframe>`

	desktop := ResizeEmbed(code, false)
	if !strings.Contains(desktop, `width="900px"`) || !strings.Contains(desktop, `height="3500px"`) {
		t.Errorf("unexpected desktop embed: %s", desktop)
	}
	mobile := ResizeEmbed(code, true)
	if !strings.Contains(mobile, `width="100%"`) || !strings.Contains(mobile, `height="5000px"`) {
		t.Errorf("unexpected mobile embed: %s", mobile)
	}
	if got := ResizeEmbed("no attributes", true); got != "no attributes" {
		t.Errorf("expected snippet without attributes to be unchanged, got %s", got)
	}
}

func TestEmbed_StripsScripts(t *testing.T) {
	code := `<iframe src="https://tickets.example.com/e/1" width="600" height="400"></iframe><script>alert(1)</script>`

	got := string(Embed(EmbedPolicy(), code, false))
	if strings.Contains(got, "<script") {
		t.Errorf("expected script to be removed, got %s", got)
	}
	if !strings.Contains(got, `<iframe src="https://tickets.example.com/e/1"`) {
		t.Errorf("expected iframe to survive, got %s", got)
	}
}
