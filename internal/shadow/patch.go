package shadow

import (
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/internal/mergepatch"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// handlePatch runs on the transport stream goroutine. A full twin
// contributes its desired section, a partial update is the patch itself.
// The callback only fires when the decoded state actually changed.
func (c *Connection[T]) handlePatch(kind models.UpdateKind, payload []byte) {
	if c.closing.Load() {
		return
	}

	doc, err := codec.ParseDocument(payload)
	if err != nil {
		c.reportAsync(&DeliveryError{Op: OpApplyPatch, Err: fmt.Errorf("%w: %w", ErrDecode, err)})
		return
	}

	patch := doc
	if kind == models.UpdateFull {
		desired, ok := codec.Section(doc, models.SectionDesired)
		if !ok {
			c.reportAsync(&DeliveryError{
				Op:  OpApplyPatch,
				Err: fmt.Errorf("%w: twin has no %s section", ErrDecode, models.SectionDesired),
			})
			return
		}
		patch = desired
	}
	patch = stripMetadata(patch)

	next, changed, err := c.state.update(func(current T) (T, bool, error) {
		currentDoc, err := codec.ToDocument(c.codec, current)
		if err != nil {
			return current, false, fmt.Errorf("%w: %w", ErrEncode, err)
		}

		merged, err := codec.FromDocument(c.codec, mergepatch.Apply(currentDoc, patch))
		if err != nil {
			return current, false, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return merged, !c.equal(current, merged), nil
	})
	if err != nil {
		c.reportAsync(&DeliveryError{Op: OpApplyPatch, Err: err})
		return
	}

	c.logger.Debug().
		Stringer("kind", kind).
		Bool("changed", changed).
		Msg("desired state patch applied")

	if !changed {
		return
	}
	c.observers.stateChange.call(next)
	c.persist()
}

// stripMetadata drops the shadow store bookkeeping fields from a desired
// section.
func stripMetadata(doc models.Document) models.Document {
	if _, ok := doc[models.FieldVersion]; !ok {
		return doc
	}
	out := make(models.Document, len(doc))
	for k, v := range doc {
		if k != models.FieldVersion {
			out[k] = v
		}
	}
	return out
}
