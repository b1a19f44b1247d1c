package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	faces = map[float64]*text.GoTextFace{}

	sourceOnce sync.Once
	source     *text.GoTextFaceSource
	sourceErr  error
)

func boldSource() (*text.GoTextFaceSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if sourceErr != nil {
			sourceErr = fmt.Errorf("render: load bold face: %w", sourceErr)
		}
	})
	return source, sourceErr
}

// Face returns the cached bold face for a pixel size.
func Face(size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: invalid face size %v", size)
	}
	if f, ok := faces[size]; ok {
		return f, nil
	}
	src, err := boldSource()
	if err != nil {
		return nil, err
	}
	f := &text.GoTextFace{Source: src, Size: size}
	faces[size] = f
	return f, nil
}
