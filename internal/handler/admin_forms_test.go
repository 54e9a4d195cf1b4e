//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDecodeEvent(t *testing.T) {
	req := formRequest(url.Values{
		"name":         {" Raku weekend "},
		"startDate":    {"2024-05-04"},
		"endDate":      {"2024-05-05"},
		"standardFee":  {"$250"},
		"earlyBirdFee": {"200.50"},
		"promoEndDate": {"2024-04-20T18:00"},
		"payLink":      {"https://pay.example.com/raku"},
	})

	e, err := decodeEvent(req)
	if err != nil {
		t.Fatalf("decodeEvent failed: %v", err)
	}
	if e.Name != "Raku weekend" {
		t.Errorf("expected trimmed name, got %q", e.Name)
	}
	if e.StandardFee != 250 || e.EarlyBirdFee != 200.5 {
		t.Errorf("unexpected fees %v / %v", e.StandardFee, e.EarlyBirdFee)
	}
	want := time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local)
	if !e.StartDate.Equal(want) {
		t.Errorf("expected start %v, got %v", want, e.StartDate)
	}
	if e.PromoEndDate == nil || e.PromoEndDate.Hour() != 18 {
		t.Errorf("expected promo end at 18:00, got %v", e.PromoEndDate)
	}
}

func TestDecodeEvent_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"bad fee", "standardFee", "lots", "standardFee must be a number"},
		{"bad date", "startDate", "05/04/2024", "startDate is not a valid date"},
		{"bad promo end", "promoEndDate", "tomorrow", "promoEndDate is not a valid date"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeEvent(formRequest(url.Values{tc.field: {tc.value}}))
			if err == nil || err.Error() != tc.want {
				t.Errorf("expected error %q, got %v", tc.want, err)
			}
		})
	}
}

func TestDecodeEvent_NoPromotion(t *testing.T) {
	e, err := decodeEvent(formRequest(url.Values{"name": {"Open studio"}}))
	if err != nil {
		t.Fatalf("decodeEvent failed: %v", err)
	}
	if e.PromoEndDate != nil {
		t.Errorf("expected no promo end date, got %v", e.PromoEndDate)
	}
}

func TestDecodePage(t *testing.T) {
	p, err := decodePage(formRequest(url.Values{"name": {"Blog"}, "active": {"on"}, "position": {"3"}}))
	if err != nil {
		t.Fatalf("decodePage failed: %v", err)
	}
	if p.Name != "Blog" || !p.Active || p.Position != 3 {
		t.Errorf("unexpected page %+v", p)
	}

	if _, err := decodePage(formRequest(url.Values{"position": {"first"}})); err == nil {
		t.Error("expected an error for a non-numeric position")
	}
}
