package gallery

import (
	"fmt"
	"strings"

	"github.com/five82/skyview/internal/apod"
)

// ViewMode switches between the stacked list and the thumbnail grid.
type ViewMode string

const (
	ViewList    ViewMode = "list"
	ViewGallery ViewMode = "gallery"
)

// ThumbnailHeight is the uniform card height, in rows, of gallery mode.
const ThumbnailHeight = 6

// Layout is how items are arranged.
type Layout string

const (
	LayoutStack Layout = "stack"
	LayoutGrid  Layout = "grid"
)

// Fit is how media is sized into its slot.
type Fit string

const (
	FitContain Fit = "contain"
	FitCover   Fit = "cover"
)

// Media distinguishes still images from embedded media such as video.
type Media string

const (
	MediaImage Media = "image"
	MediaEmbed Media = "embed"
)

// RenderParams describes how one record is drawn. Height zero means natural
// height.
type RenderParams struct {
	Layout Layout
	Fit    Fit
	Height int
	Media  Media
	Source string
}

// ParseViewMode maps user input onto a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewList:
		return ViewList, nil
	case ViewGallery:
		return ViewGallery, nil
	}
	return "", fmt.Errorf("unknown view mode %q (want list or gallery)", s)
}

// Toggle flips between list and gallery.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewGallery {
		return ViewList
	}
	return ViewGallery
}

// Project maps a record and view mode to its render parameters.
func Project(r apod.Record, mode ViewMode) RenderParams {
	p := RenderParams{Layout: LayoutStack, Fit: FitContain}
	if mode == ViewGallery {
		p = RenderParams{Layout: LayoutGrid, Fit: FitCover, Height: ThumbnailHeight}
	}
	if r.IsImage() {
		p.Media = MediaImage
		p.Source = r.ImageURL()
	} else {
		p.Media = MediaEmbed
		p.Source = r.URL
	}
	return p
}
