// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package deletion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Source identifies which FileSet variant is active.
type Source int

const (
	SourceNone Source = iota
	SourceInline
	SourceManifest
)

func (s Source) String() string {
	switch s {
	case SourceInline:
		return "inline"
	case SourceManifest:
		return "manifest"
	default:
		return "none"
	}
}

// FileSet is either an inline list of object keys or a reference to a
// manifest object in the temporary logs bucket. On the wire it is a JSON
// array of strings or a JSON string respectively.
type FileSet struct {
	source   Source
	keys     []string
	manifest string
}

// InlineKeys returns a FileSet holding keys directly.
func InlineKeys(keys ...string) FileSet {
	if keys == nil {
		keys = []string{}
	}
	return FileSet{source: SourceInline, keys: keys}
}

// ManifestReference returns a FileSet naming the manifest at key.
func ManifestReference(key string) FileSet {
	return FileSet{source: SourceManifest, manifest: key}
}

func (f FileSet) Source() Source {
	return f.source
}

// Keys returns the inline keys, or nil for a manifest reference.
func (f FileSet) Keys() []string {
	return f.keys
}

// ManifestKey returns the manifest key and true for a manifest reference.
func (f FileSet) ManifestKey() (string, bool) {
	return f.manifest, f.source == SourceManifest
}

func (f FileSet) String() string {
	switch f.source {
	case SourceInline:
		return fmt.Sprintf("inline(%d keys)", len(f.keys))
	case SourceManifest:
		return "manifest(" + f.manifest + ")"
	default:
		return "none"
	}
}

// Validate reports a FileSet that names nothing.
func (f FileSet) Validate() error {
	switch f.source {
	case SourceInline:
		return nil
	case SourceManifest:
		if f.manifest == "" {
			return errors.New("files: manifest key is empty")
		}
		return nil
	default:
		return errors.New("files: required")
	}
}

func (f *FileSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("files: empty value")
	}

	switch data[0] {
	case '[':
		var keys []string
		if err := json.Unmarshal(data, &keys); err != nil {
			return fmt.Errorf("files: %w", err)
		}
		*f = InlineKeys(keys...)
	case '"':
		var key string
		if err := json.Unmarshal(data, &key); err != nil {
			return fmt.Errorf("files: %w", err)
		}
		*f = ManifestReference(key)
	default:
		return fmt.Errorf("files: want a list of keys or a manifest key, got %s", data)
	}
	return nil
}

func (f FileSet) MarshalJSON() ([]byte, error) {
	switch f.source {
	case SourceInline:
		return json.Marshal(f.keys)
	case SourceManifest:
		return json.Marshal(f.manifest)
	default:
		return []byte("null"), nil
	}
}

// Request is the delete-originals event.
type Request struct {
	BucketName string  `json:"bucket_name" validate:"required"`
	Files      FileSet `json:"files"`
}

// VersionRef names one version or delete marker of an object.
type VersionRef struct {
	Key       string
	VersionID string
}
