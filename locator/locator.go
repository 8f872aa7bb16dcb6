// Package locator splits long-form storage locators into their store and
// object-path parts.
//
// A long-form locator has the shape:
//
//	<scheme>://<...>/containers/<container>/paths/<relative-path>
//
// Everything up to (but not including) the "/paths/" marker identifies the
// store; everything after it is the object path within that store.
package locator

import (
	"fmt"
	"strings"
)

// PathsMarker separates the store prefix from the object path in a
// long-form locator.
const PathsMarker = "/paths/"

const schemeSeparator = "://"

// Locator is the decomposed form of a long-form storage locator.
type Locator struct {
	// Raw is the original locator string.
	Raw string
	// StoreURI is everything up to the "/paths/" marker. It is the registry
	// key for the store handle bound to this locator.
	StoreURI string
	// Scheme is the locator scheme, e.g. "s3", "gs", "file". Empty if the
	// locator carries no scheme; the store factory rejects those.
	Scheme string
	// Container is the final segment of StoreURI, the storage partition
	// addressed by the locator.
	Container string
	// Path is the object path after the "/paths/" marker.
	Path string
}

// MalformedLocatorError indicates a locator string without the "/paths/"
// marker.
type MalformedLocatorError struct {
	Locator string
}

func (e *MalformedLocatorError) Error() string {
	return fmt.Sprintf("locator missing '%s' segment: %s", PathsMarker, e.Locator)
}

// Parse decomposes a long-form locator. It is pure - no network or
// filesystem access - and deterministic: for any well-formed locator,
// StoreURI + PathsMarker + Path reconstructs the input.
func Parse(raw string) (*Locator, error) {
	idx := strings.Index(raw, PathsMarker)
	if idx == -1 {
		return nil, &MalformedLocatorError{Locator: raw}
	}

	storeURI := raw[:idx]
	objectPath := raw[idx+len(PathsMarker):]

	var scheme string
	if schemeIdx := strings.Index(storeURI, schemeSeparator); schemeIdx != -1 {
		scheme = storeURI[:schemeIdx]
	}

	// the container is the last segment of the store prefix
	container := storeURI
	if segIdx := strings.LastIndex(storeURI, "/"); segIdx != -1 {
		container = storeURI[segIdx+1:]
	}

	return &Locator{
		Raw:       raw,
		StoreURI:  storeURI,
		Scheme:    scheme,
		Container: container,
		Path:      objectPath,
	}, nil
}
