// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// ErrTGATruncated is returned when pixel data ends early.
var ErrTGATruncated = errors.New("tga: data truncated")

// tgaHeader is the fixed 18-byte TGA header.
type tgaHeader struct {
	idLength     int
	colorMapType byte
	imageType    byte
	width        int
	height       int
	bpp          int
	topToBottom  bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < 18 {
		return tgaHeader{}, ErrTGATruncated
	}
	h := tgaHeader{
		idLength:     int(data[0]),
		colorMapType: data[1],
		imageType:    data[2],
		width:        int(data[12]) | int(data[13])<<8,
		height:       int(data[14]) | int(data[15])<<8,
		bpp:          int(data[16]),
		// Bit 5 of the descriptor marks rows stored top to bottom
		topToBottom: data[17]&0x20 != 0,
	}

	switch {
	case h.colorMapType != 0:
		return h, fmt.Errorf("tga: color-mapped images not supported")
	case h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE:
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	case h.bpp != 24 && h.bpp != 32:
		return h, fmt.Errorf("tga: unsupported bit depth %d", h.bpp)
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed or RLE true-color TGA image.
// Rows are returned top to bottom regardless of the storage order.
func DecodeTGA(data []byte) (image.Image, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := 18 + h.idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	dec := tgaDecoder{
		img:   image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		h:     h,
		pix:   data[offset:],
		bytes: h.bpp / 8,
	}

	if h.imageType == TGATypeUncompressed {
		err = dec.raw()
	} else {
		err = dec.rle()
	}
	if err != nil {
		return nil, err
	}
	return dec.img, nil
}

type tgaDecoder struct {
	img   *image.RGBA
	h     tgaHeader
	pix   []byte
	pos   int // read offset into pix
	n     int // pixels written
	bytes int // bytes per pixel
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() (color.RGBA, bool) {
	if d.pos+d.bytes > len(d.pix) {
		return color.RGBA{}, false
	}
	p := d.pix[d.pos : d.pos+d.bytes]
	d.pos += d.bytes
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytes == 4 {
		c.A = p[3]
	}
	return c, true
}

// put stores c at the next pixel position.
func (d *tgaDecoder) put(c color.RGBA) {
	x := d.n % d.h.width
	y := d.n / d.h.width
	if !d.h.topToBottom {
		y = d.h.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.n++
}

func (d *tgaDecoder) total() int {
	return d.h.width * d.h.height
}

func (d *tgaDecoder) raw() error {
	if len(d.pix) < d.total()*d.bytes {
		return ErrTGATruncated
	}
	for d.n < d.total() {
		c, _ := d.next()
		d.put(c)
	}
	return nil
}

// rle decodes run-length packets. A short stream leaves the remaining
// pixels transparent.
func (d *tgaDecoder) rle() error {
	for d.n < d.total() && d.pos < len(d.pix) {
		packet := d.pix[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.next()
			if !ok {
				return nil
			}
			for i := 0; i < count && d.n < d.total(); i++ {
				d.put(c)
			}
			continue
		}

		for i := 0; i < count && d.n < d.total(); i++ {
			c, ok := d.next()
			if !ok {
				return nil
			}
			d.put(c)
		}
	}
	return nil
}
