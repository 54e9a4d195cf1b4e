//go:build unit

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/state"
	"workshop-site/internal/storage"
)

func newTestGeneralService(pages *mockRepository[*data.PageDescriptor], bodyCopy *mockBodyCopyRepository, up storage.Uploader) (*GeneralService, *state.Store) {
	store := state.NewStore()
	repos := Repositories{
		Colors:   &mockRepository[*data.ThemeColor]{},
		Pages:    pages,
		Socials:  &mockRepository[*data.SocialLink]{},
		BodyCopy: bodyCopy,
	}
	svc := NewGeneralService(repos, store, up, logger.Nop())
	return svc, store
}

func TestGeneralService_PagesWriteThrough(t *testing.T) {
	pages := &mockRepository[*data.PageDescriptor]{docs: []*data.PageDescriptor{{ID: "g", Name: "Gallery", Active: true}}}
	svc, store := newTestGeneralService(pages, &mockBodyCopyRepository{}, &mockUploader{})
	ctx := context.Background()

	if err := svc.Pages.Create(ctx, &data.PageDescriptor{Name: "Events", Active: true}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := store.ActivePageCount(); got != 2 {
		t.Errorf("expected 2 active pages in the store, got %d", got)
	}

	if err := svc.Pages.Update(ctx, "g", &data.PageDescriptor{Name: "Gallery", Active: false}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := store.ActivePageCount(); got != 1 {
		t.Errorf("expected 1 active page after deactivating Gallery, got %d", got)
	}
}

func TestGeneralService_FailedWriteKeepsState(t *testing.T) {
	pages := &mockRepository[*data.PageDescriptor]{}
	svc, store := newTestGeneralService(pages, &mockBodyCopyRepository{}, &mockUploader{})
	store.SetPages([]*data.PageDescriptor{{Name: "Gallery", Active: true}})
	pages.errToReturn = errStore

	err := svc.Pages.Create(context.Background(), &data.PageDescriptor{Name: "Events", Active: true})
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if got := store.ActivePageCount(); got != 1 {
		t.Errorf("expected store to keep 1 active page, got %d", got)
	}
}

func TestGeneralService_ColorsValidateHex(t *testing.T) {
	svc, _ := newTestGeneralService(&mockRepository[*data.PageDescriptor]{}, &mockBodyCopyRepository{}, nil)

	err := svc.Colors.Validate(&data.ThemeColor{Name: "primary", Hex: "red"})
	var verr *ValidationError
	if !errors.As(err, &verr) || !verr.Has("hex") {
		t.Fatalf("expected hex validation error, got %v", err)
	}
	if err := svc.Colors.Validate(&data.ThemeColor{Name: "primary", Hex: "#ea154a"}); err != nil {
		t.Errorf("expected valid color, got %v", err)
	}
}

func TestGeneralService_HomeCopy(t *testing.T) {
	bodyCopy := &mockBodyCopyRepository{}
	svc, _ := newTestGeneralService(&mockRepository[*data.PageDescriptor]{}, bodyCopy, &mockUploader{})
	ctx := context.Background()

	bc, err := svc.HomeCopy(ctx)
	if err != nil {
		t.Fatalf("HomeCopy failed: %v", err)
	}
	if bc.ID != "" || bc.Location != HomeLocation {
		t.Errorf("expected empty home copy, got %+v", bc)
	}

	if err := svc.SaveHomeCopy(ctx, "Welcome to the studio"); err != nil {
		t.Fatalf("SaveHomeCopy failed: %v", err)
	}
	if !bodyCopy.createCalled {
		t.Error("expected the home copy to be created")
	}
	if err := svc.SaveHomeCopy(ctx, "Updated"); err != nil {
		t.Fatalf("SaveHomeCopy failed: %v", err)
	}
	bc, _ = svc.HomeCopy(ctx)
	if bc.Copy != "Updated" {
		t.Errorf("expected updated copy, got %q", bc.Copy)
	}
}

func TestGeneralService_SetHeroImageFailure(t *testing.T) {
	bodyCopy := &mockBodyCopyRepository{doc: &data.BodyCopy{ID: "copy-1", Location: HomeLocation, Image: "old.jpg"}}
	svc, _ := newTestGeneralService(&mockRepository[*data.PageDescriptor]{}, bodyCopy, &mockUploader{errToReturn: errStore})

	_, err := svc.SetHeroImage(context.Background(), "hero.jpg", strings.NewReader("img"), "image/jpeg")
	var perr *PersistenceError
	if !errors.As(err, &perr) || perr.Op != "upload" {
		t.Fatalf("expected upload PersistenceError, got %v", err)
	}
	if bodyCopy.updateImageCalled || bodyCopy.doc.Image != "old.jpg" {
		t.Error("expected the stored image to be left unchanged")
	}
}

func TestGeneralService_SetHeroImage(t *testing.T) {
	bodyCopy := &mockBodyCopyRepository{doc: &data.BodyCopy{ID: "copy-1", Location: HomeLocation, Image: "old.jpg"}}
	svc, _ := newTestGeneralService(&mockRepository[*data.PageDescriptor]{}, bodyCopy, &mockUploader{})

	url, err := svc.SetHeroImage(context.Background(), "hero.jpg", strings.NewReader("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("SetHeroImage failed: %v", err)
	}
	if bodyCopy.doc.Image != url {
		t.Errorf("expected image %s, got %s", url, bodyCopy.doc.Image)
	}
}
