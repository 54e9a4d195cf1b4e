package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"workshop-site/internal/data"
)

const (
	formDate     = "2006-01-02"
	formDateTime = "2006-01-02T15:04"
)

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func formBool(r *http.Request, key string) bool {
	switch r.FormValue(key) {
	case "on", "true", "1":
		return true
	}
	return false
}

func formInt(r *http.Request, key string) (int, error) {
	s := formString(r, key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return n, nil
}

func formFloat(r *http.Request, key string) (float64, error) {
	s := strings.TrimPrefix(formString(r, key), "$")
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return f, nil
}

func formTime(r *http.Request, key, layout string) (time.Time, error) {
	s := formString(r, key)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s is not a valid date", key)
	}
	return t, nil
}

func decodeColor(r *http.Request) (*data.ThemeColor, error) {
	return &data.ThemeColor{Name: formString(r, "name"), Hex: formString(r, "hex")}, nil
}

func decodePage(r *http.Request) (*data.PageDescriptor, error) {
	pos, err := formInt(r, "position")
	if err != nil {
		return nil, err
	}
	return &data.PageDescriptor{Name: formString(r, "name"), Active: formBool(r, "active"), Position: pos}, nil
}

func decodeSocial(r *http.Request) (*data.SocialLink, error) {
	pos, err := formInt(r, "position")
	if err != nil {
		return nil, err
	}
	return &data.SocialLink{
		Name:     formString(r, "name"),
		Link:     formString(r, "link"),
		Active:   formBool(r, "active"),
		Position: pos,
	}, nil
}

func decodeBlogPost(r *http.Request) (*data.BlogPost, error) {
	return &data.BlogPost{
		Title:    formString(r, "title"),
		Content:  r.FormValue("content"),
		Category: formString(r, "category"),
		Author:   formString(r, "author"),
		Image:    formString(r, "image"),
	}, nil
}

func decodeEvent(r *http.Request) (*data.Event, error) {
	e := &data.Event{
		Name:           formString(r, "name"),
		Description:    r.FormValue("description"),
		Image:          formString(r, "image"),
		PayLink:        formString(r, "payLink"),
		PromoPayLink:   formString(r, "promoPayLink"),
		PromoEmbedCode: strings.TrimSpace(r.FormValue("promoEmbedCode")),
		EmbedCode:      strings.TrimSpace(r.FormValue("embedCode")),
		AgeRestriction: formString(r, "ageRestriction"),
	}

	var err error
	if e.StartDate, err = formTime(r, "startDate", formDate); err != nil {
		return nil, err
	}
	if e.EndDate, err = formTime(r, "endDate", formDate); err != nil {
		return nil, err
	}
	if e.StandardFee, err = formFloat(r, "standardFee"); err != nil {
		return nil, err
	}
	if e.EarlyBirdFee, err = formFloat(r, "earlyBirdFee"); err != nil {
		return nil, err
	}
	promoEnd, err := formTime(r, "promoEndDate", formDateTime)
	if err != nil {
		return nil, err
	}
	if !promoEnd.IsZero() {
		e.PromoEndDate = &promoEnd
	}
	return e, nil
}

func decodeGalleryImage(r *http.Request) (*data.GalleryImage, error) {
	return &data.GalleryImage{URL: formString(r, "url"), Caption: formString(r, "caption")}, nil
}
