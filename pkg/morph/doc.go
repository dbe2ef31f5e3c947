// Package morph provides the canonical in-memory representation of a
// digitized neuron reconstruction and the traversal primitives built on it.
//
// # Overview
//
// Digitized morphologies arrive as flat point lists where every point carries
// a parent reference. This package reconstructs the hierarchical structure
// those references imply: maximal unbranched polylines become [Section]s,
// sections chain into one tree per neurite, and a [Morphology] aggregates the
// soma, the ordered neurites and file-level metadata.
//
// # Basic Usage
//
// Feed the full ordered sample list of one file to [Build]:
//
//	samples, _ := swc.ReadFile("neuron.swc", swc.Options{})
//	m, err := morph.Build(samples, morph.Options{Name: "neuron"})
//
// Navigate with [Morphology.Neurites], [Section.Parent], [Section.Children]
// and the predicates [Section.IsLeaf], [Section.IsForkingPoint]. Traverse
// with the orders in traverse.go ([Preorder], [Postorder], [Upstream], ...).
//
// # Arena Storage
//
// Sections live in a flat arena owned by their Morphology and are addressed
// by a stable integer [SectionID]. Parent and child links are arena indices,
// not pointers, so the object graph has no reference cycles and iteration is
// cache friendly. Section ids are dense, stable for the lifetime of the
// morphology, and usable as cache keys for derived per-section quantities.
//
// # Traversal
//
// Every order is a first-class [Order] value producing a lazy, restartable
// [iter.Seq]. All walks use explicit work stacks rather than recursion, since
// reconstructed morphologies can contain unbranched chains deeper than
// default call-stack limits. Traversal never mutates the tree: repeated calls
// over an unmutated morphology yield identical sequences.
//
// # Mutation
//
// Topology is fixed once a morphology is built. The only mutation paths are
// the bulk coordinate transforms in transform.go and the explicit
// [FuseUnifurcations] normalization; neither may run while iterators derived
// from the same morphology are being advanced. The package provides no
// internal synchronization.
//
// # Related Packages
//
// The [check] subpackage provides topology validators (monotonic radius,
// flatness, back-tracking, duplicate points) built on the traversal engine.
//
// [check]: github.com/arborlab/morpho/pkg/morph/check
package morph
