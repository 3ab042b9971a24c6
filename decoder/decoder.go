// Package decoder turns NBT wire bytes into a payload tree.
//
// A Decoder pairs an edition.Edition with its configuration. It holds no
// per-call state, so one Decoder can serve any number of concurrent decodes
// as long as each call uses its own cursor.
//
//	dec, err := decoder.New(edition.Java)
//	root, err := dec.Decode(cursor.New(data))
//
// Decoding is single pass and all-or-nothing: on any error no partial tree is
// returned. Errors are *errs.DecodeError values wrapping one of
// errs.ErrInsufficientData, errs.ErrInvalidDiscriminant, errs.ErrInvalidLength
// or errs.ErrMaxDepthExceeded.
package decoder

import (
	"context"
	"log/slog"

	"github.com/arloliu/nbt/cursor"
	"github.com/arloliu/nbt/edition"
	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/format"
	"github.com/arloliu/nbt/internal/intern"
	"github.com/arloliu/nbt/internal/options"
	"github.com/arloliu/nbt/payload"
)

// Decoder decodes NBT documents of one edition.
type Decoder struct {
	ed  edition.Edition
	cfg Config
}

// New creates a decoder for the given edition.
//
// Returns an error if any option is invalid.
func New(ed edition.Edition, opts ...Option) (*Decoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{ed: ed, cfg: cfg}, nil
}

// Edition returns the edition the decoder was built for.
func (d *Decoder) Edition() edition.Edition {
	return d.ed
}

// MaxDepth returns the configured nesting limit.
func (d *Decoder) MaxDepth() int {
	return d.cfg.maxDepth
}

// Decode reads one root document from src: a tag, a name and the payload of
// that tag. A root tag of End is rejected with errs.ErrInvalidDiscriminant.
//
// With WithUnnamedRoot the name is not read and the returned Name is empty.
func (d *Decoder) Decode(src cursor.Source) (payload.NamedTag, error) {
	st := d.newState(src)
	defer st.release()

	root, err := st.root()
	if err != nil {
		d.logFailure(err)
		return payload.NamedTag{}, err
	}

	if d.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		attrs := []any{
			"edition", d.ed.String(),
			"root", root.Tag().String(),
			"name", root.Name,
		}
		if p, ok := src.(cursor.Positioned); ok {
			attrs = append(attrs, "bytes", p.Offset())
		}
		if st.names != nil {
			attrs = append(attrs, "names_cached", st.names.Len(), "name_hits", st.names.Hits())
		}
		d.cfg.logger.Debug("nbt document decoded", attrs...)
	}

	return root, nil
}

// DecodeBytes decodes one root document from data and returns it together
// with the number of bytes consumed.
//
// Bytes after the root are ignored unless WithTrailingData(false) is set, in
// which case they fail the decode with errs.ErrTrailingData.
func (d *Decoder) DecodeBytes(data []byte) (payload.NamedTag, int, error) {
	c := cursor.New(data)

	root, err := d.Decode(c)
	if err != nil {
		return payload.NamedTag{}, 0, err
	}

	if !d.cfg.allowTrailing && c.Remaining() > 0 {
		err := errs.Wrap(errs.ErrTrailingData, "root", root.Tag().String(), c.Offset())
		d.logFailure(err)

		return payload.NamedTag{}, 0, err
	}

	return root, c.Offset(), nil
}

// DecodePayload reads the payload of a tag that the caller has already
// consumed, with no name. It rejects TagEnd, which has no payload.
func (d *Decoder) DecodePayload(src cursor.Source, tag format.Tag) (payload.Payload, error) {
	st := d.newState(src)
	defer st.release()

	p, err := st.payload(tag)
	if err != nil {
		d.logFailure(err)
		return nil, err
	}

	return p, nil
}

func (d *Decoder) newState(src cursor.Source) *state {
	st := &state{
		ed:       d.ed,
		src:      src,
		maxDepth: d.cfg.maxDepth,
		unnamed:  d.cfg.unnamedRoot,
	}
	st.sized, _ = src.(cursor.Sized)
	st.pos, _ = src.(cursor.Positioned)

	if d.cfg.interning {
		st.names = intern.Get()
	}

	return st
}

func (d *Decoder) logFailure(err error) {
	if !d.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	d.cfg.logger.Debug("nbt decode failed",
		"edition", d.ed.String(),
		"error", err,
	)
}
