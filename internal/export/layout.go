package export

import (
	"fmt"
	"math"
)

// Paper is a page size in PDF points.
type Paper struct {
	Name          string
	Width, Height float64
}

var (
	A4     = Paper{Name: "a4", Width: 595.276, Height: 841.890}
	Letter = Paper{Name: "letter", Width: 612, Height: 792}
)

func PaperByName(name string) (Paper, error) {
	switch name {
	case "", A4.Name:
		return A4, nil
	case Letter.Name:
		return Letter, nil
	}
	return Paper{}, fmt.Errorf("unknown paper size %q", name)
}

// Placement is where the bitmap lands on the page, in PDF user space
// (origin at the bottom left).
type Placement struct {
	X, Y          float64
	Width, Height float64
}

// Fit scales an image uniformly so it fits the page, centers it
// horizontally and aligns it with the top edge.
func Fit(imgW, imgH, pageW, pageH float64) Placement {
	if imgW <= 0 || imgH <= 0 {
		return Placement{}
	}
	ratio := math.Min(pageW/imgW, pageH/imgH)
	w, h := imgW*ratio, imgH*ratio
	return Placement{
		X:      (pageW - w) / 2,
		Y:      pageH - h,
		Width:  w,
		Height: h,
	}
}
