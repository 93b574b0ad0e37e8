package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 40), uint8(y * 60), 102, 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"webp": WebP, ".PNG": PNG, "Tga": TGA} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
	assert.Equal(t, ".webp", WebP.Ext())
}

func TestEncodeRoundTrip(t *testing.T) {
	src := testImage()
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		TGA:  func(b *bytes.Buffer) (image.Image, error) { return tga.Decode(b) },
		WebP: func(b *bytes.Buffer) (image.Image, error) { return webp.Decode(b) },
	}
	for f, decode := range decoders {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, src, f), f)

		got, err := decode(&buf)
		require.NoError(t, err, f)
		assert.Equal(t, src.Bounds(), got.Bounds(), f)

		r, g, b, _ := got.At(3, 2).RGBA()
		assert.Equal(t, [3]uint32{120, 120, 102}, [3]uint32{r >> 8, g >> 8, b >> 8}, f)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, testImage(), Format("bmp")))
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames", "0001.png")
	require.NoError(t, Save(path, testImage(), PNG))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
