package export

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"github.com/rogersnm/resumecraft/internal/render"
)

// Viewport wide enough for a 210mm page at 96dpi.
const (
	viewportWidth  = 900
	viewportHeight = 1200
)

// ChromeRasterizer screenshots the preview element with headless Chrome.
type ChromeRasterizer struct {
	// ExecPath overrides the browser binary; empty uses chromedp's lookup.
	ExecPath string
}

var _ Rasterizer = (*ChromeRasterizer)(nil)

func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string, scale float64) (image.Image, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var buf []byte
	err := chromedp.Run(cctx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(scale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitVisible(render.PreviewSelector, chromedp.ByQuery),
		chromedp.Screenshot(render.PreviewSelector, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, errors.Wrap(err, "capturing preview")
	}
	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.Wrap(err, "decoding screenshot")
	}
	return img, nil
}
