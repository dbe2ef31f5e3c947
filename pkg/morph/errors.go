package morph

import "errors"

var (
	// ErrDuplicateID is returned by [Build] when two samples share an id.
	// Sample ids must be unique within one file.
	ErrDuplicateID = errors.New("duplicate sample id")

	// ErrUnresolvedParent is returned by [Build] when a sample references a
	// parent id that is not defined anywhere in the file. Reconstruction
	// fails fast: a dangling reference cannot produce a sound tree.
	ErrUnresolvedParent = errors.New("unresolved parent reference")

	// ErrMalformedSoma is returned by [Build] when the soma point set is
	// empty, bifurcating, or otherwise unusable.
	ErrMalformedSoma = errors.New("malformed soma")

	// ErrDisconnected is returned by [Build] when a sample is unreachable
	// from every neurite root. Disconnected components violate the
	// one-tree-per-neurite invariant, so no auto-repair is attempted.
	ErrDisconnected = errors.New("disconnected component")

	// ErrInvalidSection is returned when a section would hold fewer than
	// two points. This covers neurite roots that fork immediately and
	// leaves that collapse onto their branch point.
	ErrInvalidSection = errors.New("section needs at least two points")

	// ErrSectionAttached is returned by [Section.AppendChild] when the
	// child already has a parent. A section has exactly one owner.
	ErrSectionAttached = errors.New("section already attached to a parent")

	// ErrForeignSection is returned by [Section.AppendChild] when parent
	// and child belong to different morphologies. Ownership never crosses
	// arena boundaries.
	ErrForeignSection = errors.New("section belongs to a different morphology")
)
