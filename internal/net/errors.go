package net

import "errors"

var (
	// SizeMismatchErr signals an input, ideal or weight vector that does not fit the network structure.
	SizeMismatchErr = errors.New("size mismatch")
	// UnknownLayerErr signals a layer that was added to the network after a trainer was created for it.
	UnknownLayerErr = errors.New("unknown layer")
)
