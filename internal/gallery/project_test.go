package gallery

import (
	"testing"

	"github.com/five82/skyview/internal/apod"
)

func TestProject(t *testing.T) {
	image := apod.Record{Date: "2024-01-01", URL: "low", HDURL: "high", MediaType: "image"}
	video := apod.Record{Date: "2024-01-02", URL: "https://youtube.example/embed", MediaType: "video"}

	tests := []struct {
		name   string
		record apod.Record
		mode   ViewMode
		want   RenderParams
	}{
		{"list image", image, ViewList, RenderParams{Layout: LayoutStack, Fit: FitContain, Media: MediaImage, Source: "high"}},
		{"gallery image", image, ViewGallery, RenderParams{Layout: LayoutGrid, Fit: FitCover, Height: ThumbnailHeight, Media: MediaImage, Source: "high"}},
		{"list video", video, ViewList, RenderParams{Layout: LayoutStack, Fit: FitContain, Media: MediaEmbed, Source: video.URL}},
		{"gallery video", video, ViewGallery, RenderParams{Layout: LayoutGrid, Fit: FitCover, Height: ThumbnailHeight, Media: MediaEmbed, Source: video.URL}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Project(tt.record, tt.mode); got != tt.want {
				t.Fatalf("Project = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseViewMode(t *testing.T) {
	if v, err := ParseViewMode("GALLERY"); err != nil || v != ViewGallery {
		t.Fatalf("ParseViewMode = %q, %v", v, err)
	}
	if _, err := ParseViewMode("grid"); err == nil {
		t.Fatalf("ParseViewMode(grid) returned nil error")
	}
	if ViewList.Toggle() != ViewGallery || ViewGallery.Toggle() != ViewList {
		t.Fatalf("ViewMode.Toggle does not flip")
	}
}
