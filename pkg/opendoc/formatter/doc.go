// Package formatter translates element property bags into WordprocessingML
// property markup.
//
// A Formatter is built from a Dialect: an alias table mapping public names
// ("bold") to canonical element names ("b"), a type map assigning each
// canonical name a type tag ("b" is TagBool), and the encoders for the
// tags the dialect adds. Format walks an element's properties in order and
// dispatches each one to the encoder for its tag; properties whose tag has
// no encoder are skipped.
//
// Registering a nil encoder or an empty tag panics with a ContractViolation.
package formatter
