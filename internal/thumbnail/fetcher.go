package thumbnail

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Display sizes in pixels
const (
	CardSize  = 150
	PopupSize = 250
)

// Fetch limits
const (
	DefaultTimeout     = 15 * time.Second
	DefaultParallelism = 4
	MaxImageBytes      = 10 << 20
)

// Fetcher downloads and resizes images
type Fetcher struct {
	client      *http.Client
	parallelism int
}

// NewFetcher creates a fetcher. A nil client gets a default one with DefaultTimeout.
func NewFetcher(client *http.Client, parallelism int) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}
	return &Fetcher{client: client, parallelism: parallelism}
}

// Fetch downloads url and scales it to size x size.
// The bool is false when url is empty or anything along the way fails.
func (f *Fetcher) Fetch(ctx context.Context, url string, size int) (image.Image, bool) {
	if url == "" {
		return nil, false
	}

	img, err := f.fetch(ctx, url)
	if err != nil {
		log.Printf("Image fetch skipped for %s: %v", url, err)
		return nil, false
	}

	return Resize(img, size), true
}

// FetchAll fetches every url concurrently and returns the images that succeeded, keyed like urls
func (f *Fetcher) FetchAll(ctx context.Context, urls map[int]string, size int) map[int]image.Image {
	images := make(map[int]image.Image, len(urls))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(f.parallelism)

	for id, url := range urls {
		if url == "" {
			continue
		}
		g.Go(func() error {
			img, ok := f.Fetch(ctx, url, size)
			if !ok {
				return nil
			}
			mu.Lock()
			images[id] = img
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return images
}

func (f *Fetcher) fetch(ctx context.Context, url string) (image.Image, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// Resize scales src to exactly size x size; the aspect ratio is not kept
func Resize(src image.Image, size int) image.Image {
	if size <= 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
