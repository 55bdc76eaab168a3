// Package source loads raw dictionary text for the lexicon from wherever a
// word list lives: a local file, an S3 object, the dictionary database or a
// compiled DAWG.
package source

import (
	"context"
	"fmt"
	"strings"
)

// Source produces a newline-delimited word list
type Source interface {
	Load(ctx context.Context) (string, error)
	String() string
}

// Options carries the collaborators some sources need
type Options struct {
	// Store backs "db:" URIs
	Store WordStore
	// AWSRegion is used for "s3://" URIs
	AWSRegion string
}

// Open returns the source for uri:
//
//	s3://bucket/key    object in S3
//	db:name            stored dictionary
//	path/to/file.dawg  compiled word graph
//	path/to/file       plain word list
func Open(ctx context.Context, uri string, opts Options) (Source, error) {
	switch {
	case strings.HasPrefix(uri, "s3://"):
		return NewS3(ctx, uri, opts.AWSRegion)
	case strings.HasPrefix(uri, "db:"):
		name := strings.TrimPrefix(uri, "db:")
		if name == "" {
			return nil, fmt.Errorf("missing dictionary name in %q", uri)
		}
		if opts.Store == nil {
			return nil, fmt.Errorf("no dictionary store configured for %q", uri)
		}
		return &Database{Store: opts.Store, Name: name}, nil
	case strings.HasSuffix(uri, ".dawg"):
		return &DAWG{Path: uri}, nil
	case uri == "":
		return nil, fmt.Errorf("empty dictionary source")
	default:
		return &File{Path: uri}, nil
	}
}
