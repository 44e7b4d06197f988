package ports

import (
	"context"
	"io"

	"github.com/Deltawerks/starprint/internal/domain"
)

// Backend is the surface of the StarPrint data service the client depends
// on. The TUI and the MCP adapter share one implementation; the service
// itself (extraction, conversion, thumbnail rendering) stays opaque.
type Backend interface {
	// Status reports whether the service has a game data path configured.
	Status(ctx context.Context) (domain.SessionStatus, error)

	// SetPath points the service at a game data folder and loads it.
	SetPath(ctx context.Context, path string) error

	// Categories fetches the full category tree. Called once per session.
	Categories(ctx context.Context) ([]*domain.CategoryNode, error)

	// Items lists the items of a leaf category path.
	Items(ctx context.Context, path string) ([]domain.Item, error)

	// Search runs a free-text query across all items.
	Search(ctx context.Context, query string) ([]domain.Item, error)

	// GenerateThumbnails renders thumbnails for every item in a category.
	// Long-running; bounded only by the transport.
	GenerateThumbnails(ctx context.Context, path string) (domain.ThumbnailReport, error)

	// ThumbnailStatus probes a category's thumbnail coverage.
	ThumbnailStatus(ctx context.Context, path string) (domain.ThumbnailStatus, error)

	// Export converts an item server-side and reports where to fetch it.
	Export(ctx context.Context, id string) (domain.ExportResult, error)

	// Download streams a file the service exposes, by absolute or
	// service-relative URL. The caller closes the reader.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
