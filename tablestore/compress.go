package tablestore

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType selects the compression applied to stored records.
type CompressionType uint8

const (
	// CompressionNone stores records uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fastest).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)

// Record layout: [1 byte type][uvarint uncompressed length][payload].
// Records that do not shrink under the configured algorithm are stored with
// type CompressionNone, so Get never needs to know the Put-time setting.

// lz4 compressor state is not safe for concurrent use.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// compressedStore decorates an inner Store with transparent compression.
type compressedStore struct {
	inner Store
	ctype CompressionType

	zenc *zstd.Encoder
	zdec *zstd.Decoder
}

// WithCompression wraps inner so that records are compressed on Put and
// transparently decompressed on Get. Records written without compression (or
// with a different algorithm) still read back correctly because every record
// carries a self-describing header.
func WithCompression(inner Store, ctype CompressionType) (Store, error) {
	s := &compressedStore{inner: inner, ctype: ctype}

	// EncodeAll/DecodeAll on shared coders are safe for concurrent use.
	var err error
	if s.zenc, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault)); err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	if s.zdec, err = zstd.NewReader(nil); err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return s, nil
}

func (s *compressedStore) Put(ctx context.Context, name string, data []byte) error {
	var compressed []byte

	switch s.ctype {
	case CompressionLZ4:
		c := lz4CompressorPool.Get().(*lz4.Compressor)
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := c.CompressBlock(data, buf)
		lz4CompressorPool.Put(c)
		if err != nil {
			return fmt.Errorf("lz4 compress %q: %w", name, err)
		}
		if n > 0 && n < len(data) {
			compressed = buf[:n]
		}
	case CompressionZSTD:
		buf := s.zenc.EncodeAll(data, nil)
		if len(buf) < len(data) {
			compressed = buf
		}
	}

	record := make([]byte, 0, len(data)+1+binary.MaxVarintLen64)
	if compressed == nil {
		record = append(record, byte(CompressionNone))
		record = binary.AppendUvarint(record, uint64(len(data)))
		record = append(record, data...)
	} else {
		record = append(record, byte(s.ctype))
		record = binary.AppendUvarint(record, uint64(len(data)))
		record = append(record, compressed...)
	}

	return s.inner.Put(ctx, name, record)
}

func (s *compressedStore) Get(ctx context.Context, name string) ([]byte, error) {
	record, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(record) < 1 {
		return nil, fmt.Errorf("compressed record %q: empty", name)
	}

	ctype := CompressionType(record[0])
	ulen, n := binary.Uvarint(record[1:])
	if n <= 0 {
		return nil, fmt.Errorf("compressed record %q: bad length header", name)
	}
	payload := record[1+n:]

	switch ctype {
	case CompressionNone:
		if uint64(len(payload)) != ulen {
			return nil, fmt.Errorf("compressed record %q: length mismatch", name)
		}
		return payload, nil
	case CompressionLZ4:
		out := make([]byte, ulen)
		m, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress %q: %w", name, err)
		}
		if uint64(m) != ulen {
			return nil, fmt.Errorf("compressed record %q: length mismatch", name)
		}
		return out, nil
	case CompressionZSTD:
		out, err := s.zdec.DecodeAll(payload, make([]byte, 0, ulen))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress %q: %w", name, err)
		}
		if uint64(len(out)) != ulen {
			return nil, fmt.Errorf("compressed record %q: length mismatch", name)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("compressed record %q: unknown compression type %d", name, ctype)
	}
}

func (s *compressedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *compressedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
