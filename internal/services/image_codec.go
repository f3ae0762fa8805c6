package services

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"tripcraft/internal/infra"
	"tripcraft/pkg/utils"
)

var imageMIMETypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// NormalizeImage decodes an upload and re-encodes it in its detected format.
// WebP is forwarded as received since there is no encoder for it. Images whose
// header declares more than maxPixels pixels are rejected before decoding.
func NormalizeImage(data []byte, maxPixels int64) (infra.Attachment, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return infra.Attachment{}, fmt.Errorf("%w: %v", utils.ErrUnsupportedImageFormat, err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); maxPixels > 0 && pixels > maxPixels {
		return infra.Attachment{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", utils.ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return infra.Attachment{}, fmt.Errorf("%w: %v", utils.ErrUnsupportedImageFormat, err)
	}
	mime, ok := imageMIMETypes[format]
	if !ok {
		return infra.Attachment{}, fmt.Errorf("%w: %s", utils.ErrUnsupportedImageFormat, format)
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	case "webp":
		_, err = buf.Write(data)
	}
	if err != nil {
		return infra.Attachment{}, fmt.Errorf("re-encode %s image: %w", format, err)
	}

	return infra.Attachment{MIMEType: mime, Data: buf.Bytes()}, nil
}
