package probe

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imgresolve/internal/logging"
	"imgresolve/internal/textutil"
)

// FileMetadata holds the facts shown next to each group member.
type FileMetadata struct {
	Path   string
	Width  int
	Height int
	// Captured is the EXIF original capture time as recorded by the camera,
	// with the sub-second field appended after a space when present.
	Captured string
	Size     int64
	// Structured is true when the file decoded as an image.
	Structured  bool
	Diagnostics string
}

// Dimensions renders "WxH", or "" when the file did not decode.
func (m FileMetadata) Dimensions() string {
	if !m.Structured {
		return ""
	}
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Summary renders the one-line description used by the auto-resolver prompt.
func (m FileMetadata) Summary() string {
	if !m.Structured {
		return textutil.FormatSize(m.Size)
	}
	parts := []string{m.Dimensions()}
	if m.Captured != "" {
		parts = append(parts, m.Captured)
	}
	parts = append(parts, textutil.FormatSize(m.Size))
	return strings.Join(parts, " ")
}

// Inspector runs an external validity check against a file.
type Inspector interface {
	Inspect(ctx context.Context, path string) (string, error)
}

// Prober gathers FileMetadata for single files.
type Prober struct {
	inspector Inspector
	logger    *slog.Logger
}

// New returns a Prober. A nil inspector disables external diagnostics.
func New(inspector Inspector, logger *slog.Logger) *Prober {
	return &Prober{
		inspector: inspector,
		logger:    logging.NewComponentLogger(logger, "probe"),
	}
}

// Probe inspects path. It never fails: a file that does not decode as an
// image is reported with its size only.
func (p *Prober) Probe(ctx context.Context, path string) FileMetadata {
	meta := FileMetadata{Path: path}
	info, err := os.Stat(path)
	if err != nil {
		p.logger.Debug("stat failed", logging.Path(path), logging.Error(err))
		return meta
	}
	meta.Size = info.Size()

	if err := decodeImage(path, &meta); err != nil {
		p.logger.Debug("image decode failed; reporting size only", logging.Path(path), logging.Error(err))
	}

	if p.inspector != nil {
		out, err := p.inspector.Inspect(ctx, path)
		if err != nil {
			p.logger.Debug("inspector reported a problem", logging.Path(path), logging.Error(err))
		}
		meta.Diagnostics = cleanDiagnostics(path, out)
	}
	return meta
}

func decodeImage(path string, meta *FileMetadata) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	meta.Width = cfg.Width
	meta.Height = cfg.Height
	meta.Structured = true

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	meta.Captured = captureTime(file)
	return nil
}

// captureTime prefers DateTimeOriginal over DateTime and appends
// SubSecTimeOriginal when the camera wrote one.
func captureTime(r io.Reader) string {
	x, err := exif.Decode(r)
	if err != nil {
		return ""
	}
	captured := exifString(x, exif.DateTimeOriginal)
	if captured == "" {
		captured = exifString(x, exif.DateTime)
	}
	if captured == "" {
		return ""
	}
	if subsec := exifString(x, exif.SubSecTimeOriginal); subsec != "" {
		captured += " " + subsec
	}
	return captured
}

func exifString(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	value, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(value, "\x00"))
}

// cleanDiagnostics strips the echoed path most inspectors print first.
func cleanDiagnostics(path, out string) string {
	out = strings.TrimSpace(out)
	out = strings.TrimSpace(strings.TrimPrefix(out, path))
	return strings.Join(strings.Fields(out), " ")
}
