package sprite

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Codec converts raw ARGB pixel data to and from the compressed buffer
// form held by the Store. The optimizer itself never decodes sprites;
// the codec serves snapshot I/O and preview tooling.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec creates a codec with default compression settings.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxWindow(32*1024*1024),
	)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Compress encodes raw pixel data into the stored buffer form.
func (c *Codec) Compress(pixels []byte) []byte {
	return c.enc.EncodeAll(pixels, nil)
}

// Decompress decodes a stored buffer back into raw pixel data.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	out, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress sprite: %w", err)
	}
	return out, nil
}

// Close releases the codec's encoder and decoder resources.
func (c *Codec) Close() {
	c.enc.Close()
	c.dec.Close()
}
