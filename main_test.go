package main

import (
	"image"
	"testing"
)

func newTestView(size int) tileView {
	return tileView{rgba: image.NewRGBA(image.Rect(0, 0, size, size))}
}

func TestViewImageUploadsOnce(t *testing.T) {
	v := &viewer{views: []tileView{newTestView(4)}}

	first := v.viewImage(0)
	if first == nil {
		t.Fatalf("Expected an uploaded texture")
	}
	if second := v.viewImage(0); second != first {
		t.Errorf("Expected the texture to be reused between frames")
	}
}

func TestReplaceViewsFreesTextures(t *testing.T) {
	old := []tileView{newTestView(4), newTestView(4), newTestView(4)}
	v := &viewer{views: old}
	v.viewImage(0)
	v.viewImage(2)

	fresh := []tileView{newTestView(8), newTestView(8), newTestView(8)}
	v.replaceViews(fresh)

	for i, view := range old {
		if view.image != nil {
			t.Errorf("Expected texture %d of the replaced views to be freed", i)
		}
	}
	if &v.views[0] != &fresh[0] {
		t.Errorf("Expected the fresh views to be installed")
	}
	for i := range v.views {
		if v.views[i].image != nil {
			t.Errorf("Expected view %d to start without a texture", i)
		}
	}
	if img := v.viewImage(1); img.Bounds().Dx() != 8 {
		t.Errorf("Expected the fresh preview to be uploaded, got %v", img.Bounds())
	}
}
