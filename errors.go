package markit

import "errors"

var (
	// ErrDuplicateWeight reports a weight applied twice to one fragment.
	ErrDuplicateWeight = errors.New("weight already applied")
	// ErrNotDecorator reports an attempt to apply Plain or NoSpace as a marker.
	ErrNotDecorator = errors.New("weight does not decorate text")
	// ErrNoPrecedingText reports a weight requested before any text fragment.
	ErrNoPrecedingText = errors.New("no preceding text to apply weight to")
	// ErrListSealed reports an item added after the list handed control back to its document.
	ErrListSealed = errors.New("list is sealed")
	// ErrRowSize reports a table row whose cell count differs from the header count.
	ErrRowSize = errors.New("row size does not match header count")
)
