package handler

import (
	"context"
	"io"
	"net/http"
	"workshop-site/internal/data"
	"workshop-site/internal/session"

	"github.com/go-chi/chi/v5"
)

// editor is the write side of an admin editor.
type editor[T data.Document] interface {
	Create(ctx context.Context, draft T) error
	Update(ctx context.Context, id string, draft T) error
	Delete(ctx context.Context, id string) error
	Validate(draft T) error
	UploadImage(ctx context.Context, fileName string, r io.Reader, contentType string) (string, error)
}

// resource binds an editor to its form and dashboard section.
type resource[T data.Document] struct {
	label    string // used in notifications, e.g. "Blog post"
	section  string
	editor   editor[T]
	decode   func(r *http.Request) (T, error)
	setImage func(T, string) // nil when the form carries no image
}

func (res resource[T]) redirect(w http.ResponseWriter, r *http.Request) {
	target := "/admin"
	if res.section != sectionGeneral {
		target += "/" + res.section
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// save creates a document, or updates it when the route carries an id. The
// draft is validated before an attached image is uploaded, and if the upload
// fails nothing is written.
func (res resource[T]) save(h *AdminHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer res.redirect(w, r)

		var (
			file              io.ReadCloser
			name, contentType string
			err               error
		)
		if res.setImage != nil {
			file, name, contentType, err = formImage(w, r)
			if err != nil {
				flashForError(ctx, h.sessions, h.log, err)
				return
			}
			if file != nil {
				defer file.Close()
			}
		}

		draft, err := res.decode(r)
		if err != nil {
			session.SetFlash(ctx, h.sessions, session.FlashError, err.Error())
			return
		}

		if file != nil {
			// Stands in for the URL until the upload succeeds.
			res.setImage(draft, name)
			if err := res.editor.Validate(draft); err != nil {
				flashForError(ctx, h.sessions, h.log, err)
				return
			}
			url, err := res.editor.UploadImage(ctx, name, file, contentType)
			if err != nil {
				flashForError(ctx, h.sessions, h.log, err)
				return
			}
			res.setImage(draft, url)
		}

		id := chi.URLParam(r, "id")
		verb := "updated"
		if id == "" {
			err = res.editor.Create(ctx, draft)
			verb = "created"
		} else {
			err = res.editor.Update(ctx, id, draft)
		}
		if err != nil {
			flashForError(ctx, h.sessions, h.log, err)
			return
		}
		session.SetFlash(ctx, h.sessions, session.FlashSuccess, res.label+" "+verb+".")
	}
}

func (res resource[T]) delete(h *AdminHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := res.editor.Delete(ctx, chi.URLParam(r, "id")); err != nil {
			flashForError(ctx, h.sessions, h.log, err)
		} else {
			session.SetFlash(ctx, h.sessions, session.FlashSuccess, res.label+" deleted.")
		}
		res.redirect(w, r)
	}
}

// mount registers create, update and delete routes for a resource under path.
func mount[T data.Document](r chi.Router, h *AdminHandler, path string, res resource[T]) {
	r.Post(path, res.save(h))
	r.Post(path+"/{id}", res.save(h))
	r.Post(path+"/{id}/delete", res.delete(h))
}

// routes registers the dashboard write endpoints.
func (h *AdminHandler) routes(r chi.Router) {
	mount(r, h, "/admin/colors", resource[*data.ThemeColor]{
		label: "Color", section: sectionGeneral, editor: h.general.Colors, decode: decodeColor,
	})
	mount(r, h, "/admin/pages", resource[*data.PageDescriptor]{
		label: "Page", section: sectionGeneral, editor: h.general.Pages, decode: decodePage,
	})
	mount(r, h, "/admin/socials", resource[*data.SocialLink]{
		label: "Social link", section: sectionGeneral, editor: h.general.Socials, decode: decodeSocial,
	})
	mount(r, h, "/admin/posts", resource[*data.BlogPost]{
		label: "Blog post", section: sectionBlog, editor: h.blog, decode: decodeBlogPost,
		setImage: func(p *data.BlogPost, url string) { p.Image = url },
	})
	mount(r, h, "/admin/workshops", resource[*data.Event]{
		label: "Event", section: sectionEvents, editor: h.events, decode: decodeEvent,
		setImage: func(e *data.Event, url string) { e.Image = url },
	})
	mount(r, h, "/admin/images", resource[*data.GalleryImage]{
		label: "Image", section: sectionGallery, editor: h.gallery, decode: decodeGalleryImage,
		setImage: func(g *data.GalleryImage, url string) { g.URL = url },
	})
	r.Post("/admin/home", h.homeCopyHandler)
	r.Post("/admin/home/image", h.heroImageHandler)
}
