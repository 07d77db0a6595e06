package plate

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/foldprint/foldprint/pkg/errors"
	"github.com/foldprint/foldprint/pkg/layout"
)

// writeTestPNG writes a w x h PNG to dir and returns its path.
func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFitImage(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		imgW   int
		imgH   int
		bounds layout.Rect
		want   layout.Rect
	}{
		{
			name:   "wide image letterboxed",
			imgW:   2,
			imgH:   1,
			bounds: layout.Rect{X: 0, Y: 0, W: 100, H: 100},
			want:   layout.Rect{X: 0, Y: 25, W: 100, H: 50},
		},
		{
			name:   "tall image pillarboxed",
			imgW:   1,
			imgH:   2,
			bounds: layout.Rect{X: 10, Y: 10, W: 100, H: 100},
			want:   layout.Rect{X: 35, Y: 10, W: 50, H: 100},
		},
		{
			name:   "square image fills footprint",
			imgW:   4,
			imgH:   4,
			bounds: layout.Rect{X: 5, Y: 5, W: 80, H: 80},
			want:   layout.Rect{X: 5, Y: 5, W: 80, H: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestPNG(t, t.TempDir(), tt.imgW, tt.imgH)
			got, err := fitImage(path, tt.bounds)
			if err != nil {
				t.Fatalf("fitImage() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("fitImage() = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := fitImage(filepath.Join(dir, "missing.png"), layout.Rect{W: 10, H: 10})
		if !errors.Is(err, errors.ErrCodeAssetUnavailable) {
			t.Errorf("error = %v, want code %v", err, errors.ErrCodeAssetUnavailable)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.png")
		if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := fitImage(path, layout.Rect{W: 10, H: 10})
		if !errors.Is(err, errors.ErrCodeAssetUnavailable) {
			t.Errorf("error = %v, want code %v", err, errors.ErrCodeAssetUnavailable)
		}
	})
}

// TestPDFCanvasEndToEnd exercises the full fpdf-backed path: missing TTF
// falls back to the built-in font, a missing logo is skipped with a
// warning, and the document still lands on disk with content.
func TestPDFCanvasEndToEnd(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger := log.New(&buf)

	canvas := NewPDFCanvas(layout.A4(), filepath.Join(dir, "missing.ttf"), logger)

	g, err := NewGenerator(canvas, Options{LogoPath: filepath.Join(dir, "missing.png")}, logger)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	if err := g.Generate([]string{"Alice Smith", "Bob"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if g.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", g.Pages())
	}

	out := filepath.Join(dir, "nameplates.pdf")
	if err := g.Save(out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}

	logged := buf.String()
	if !bytes.Contains([]byte(logged), []byte("font unavailable")) {
		t.Errorf("expected font fallback warning, got %q", logged)
	}
	if !bytes.Contains([]byte(logged), []byte("skipping logo")) {
		t.Errorf("expected logo warning, got %q", logged)
	}
}

// TestPDFCanvasWithLogo draws a real PNG logo on every half.
func TestPDFCanvasWithLogo(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(new(bytes.Buffer))
	logoPath := writeTestPNG(t, dir, 64, 32)

	canvas := NewPDFCanvas(layout.A4(), filepath.Join(dir, "missing.ttf"), logger)
	g, err := NewGenerator(canvas, Options{LogoPath: logoPath, FoldGuide: true}, logger)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	if err := g.Generate([]string{"Carol Jones"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	out := filepath.Join(dir, "out.pdf")
	if err := g.Save(out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output document is empty")
	}
}
