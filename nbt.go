// Package nbt decodes NBT (Named Binary Tag), the binary tree format Minecraft
// uses for worlds, items, entities and network packets.
//
// An NBT document is a single root tag: a tag discriminant, a name and a
// payload. Payloads are numbers, strings, typed arrays, homogeneous lists and
// compounds (string-keyed maps), nested arbitrarily. Each game edition lays
// out primitive numbers differently, so every decode names an edition:
//
//   - edition.Java: big-endian, fixed width. Files such as level.dat.
//   - edition.JavaNetwork: as Java, with a nameless root since 1.20.2.
//   - edition.Bedrock: little-endian, fixed width. Files and world storage.
//   - edition.BedrockNetwork: little-endian with zig-zag varint Int and Long.
//
// # Basic Usage
//
// Decoding an uncompressed document:
//
//	root, err := nbt.DecodeJava(data)
//	if err != nil {
//	    return err
//	}
//	level, _ := root.Compound()
//	name, _ := level.Str("LevelName")
//
// Decoding a gzip or zlib compressed file:
//
//	root, err := nbt.DecodeCompressed(levelDat, edition.Java)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the decoder
// package. For repeated decoding with the same settings, or for decoding
// several documents from one buffer, create a decoder.Decoder directly.
//
// # Errors
//
// Decoding is all-or-nothing: on failure no partial tree is returned. Errors
// wrap the sentinels in the errs package and can be matched with errors.Is.
package nbt

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/arloliu/nbt/compress"
	"github.com/arloliu/nbt/decoder"
	"github.com/arloliu/nbt/edition"
	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/internal/pool"
	"github.com/arloliu/nbt/payload"
)

var defaultJavaNetworkOptions = []decoder.Option{
	decoder.WithUnnamedRoot(),
}

// NewDecoder creates a reusable decoder for the given edition.
//
// Available options:
//   - decoder.WithMaxDepth(n)
//   - decoder.WithUnnamedRoot()
//   - decoder.WithTrailingData(true|false)
//   - decoder.WithNameInterning(true|false)
//   - decoder.WithLogger(logger)
//
// Returns an error if any option is invalid.
func NewDecoder(ed edition.Edition, opts ...decoder.Option) (*decoder.Decoder, error) {
	return decoder.New(ed, opts...)
}

// Decode decodes one uncompressed root document from data using the given
// edition. Bytes after the root are ignored unless
// decoder.WithTrailingData(false) is passed.
func Decode(data []byte, ed edition.Edition, opts ...decoder.Option) (payload.NamedTag, error) {
	dec, err := decoder.New(ed, opts...)
	if err != nil {
		return payload.NamedTag{}, err
	}

	root, _, err := dec.DecodeBytes(data)

	return root, err
}

// DecodeJava decodes a document in the Java file edition.
func DecodeJava(data []byte, opts ...decoder.Option) (payload.NamedTag, error) {
	return Decode(data, edition.Java, opts...)
}

// DecodeJavaNetwork decodes a document as sent by the Java network protocol,
// whose root carries no name.
func DecodeJavaNetwork(data []byte, opts ...decoder.Option) (payload.NamedTag, error) {
	return Decode(data, edition.JavaNetwork, append(slices.Clone(defaultJavaNetworkOptions), opts...)...)
}

// DecodeBedrock decodes a document in the Bedrock file edition.
func DecodeBedrock(data []byte, opts ...decoder.Option) (payload.NamedTag, error) {
	return Decode(data, edition.Bedrock, opts...)
}

// DecodeBedrockNetwork decodes a document in the Bedrock network edition.
func DecodeBedrockNetwork(data []byte, opts ...decoder.Option) (payload.NamedTag, error) {
	return Decode(data, edition.BedrockNetwork, opts...)
}

// DecodeCompressed detects gzip, zlib or zstd compression of data,
// decompresses it and decodes the result. Uncompressed input is decoded as is.
//
// Example:
//
//	root, err := nbt.DecodeCompressed(levelDat, edition.Java)
func DecodeCompressed(data []byte, ed edition.Edition, opts ...decoder.Option) (payload.NamedTag, error) {
	raw, err := compress.Decompress(data)
	if err != nil {
		return payload.NamedTag{}, err
	}

	return Decode(raw, ed, opts...)
}

// DecodeReader reads r to the end and decodes it like DecodeCompressed.
//
// The input is staged in a pooled buffer; the returned tree does not
// reference it. Input larger than compress.MaxDecompressedSize fails with
// errs.ErrDecompressedTooLarge.
func DecodeReader(r io.Reader, ed edition.Edition, opts ...decoder.Option) (payload.NamedTag, error) {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if _, err := buf.ReadFromLimit(r, compress.MaxDecompressedSize); err != nil {
		if errors.Is(err, pool.ErrSizeLimit) {
			return payload.NamedTag{}, fmt.Errorf("nbt: %w", errs.ErrDecompressedTooLarge)
		}

		return payload.NamedTag{}, fmt.Errorf("nbt: read failed: %w", err)
	}

	return DecodeCompressed(buf.Bytes(), ed, opts...)
}
