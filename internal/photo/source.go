package photo

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"reflect"
)

// ThumbnailSuffix asks the image service for a fixed-height 300px thumbnail.
// It is appended verbatim to URL sources and must not be altered.
const ThumbnailSuffix = "?x-oss-process=image/resize,m_fixed,h_300,w_0"

// ErrNotFound is returned when a source is not part of a list.
var ErrNotFound = errors.New("photo source not found")

type Kind int

const (
	KindURL Kind = iota
	KindLocal
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindLocal:
		return "local"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Source is a reference to an image, either a remote URL or an opaque local handle.
// Sources are compared by pointer when removing them from a list; two sources
// built from the same value are still different entries.
type Source struct {
	kind   Kind
	url    string
	handle any
}

func URL(u string) *Source {
	return &Source{kind: KindURL, url: u}
}

// Local wraps a handle owned by the host platform (a path, a content id, ...).
func Local(handle any) *Source {
	return &Source{kind: KindLocal, handle: handle}
}

func (s *Source) Kind() Kind {
	return s.kind
}

// Value returns the URL string for URL sources and the handle for local ones.
func (s *Source) Value() any {
	if s.kind == KindURL {
		return s.url
	}
	return s.handle
}

// Equal reports value equality; it says nothing about identity.
func (s *Source) Equal(other *Source) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.kind != other.kind {
		return false
	}
	if s.kind == KindURL {
		return s.url == other.url
	}
	return sameHandle(s.handle, other.handle)
}

// sameHandle compares local handles with ==; handles of different dynamic
// types, or of types that are not comparable, are never equal.
func sameHandle(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// DisplaySource is what gets handed to the image loader for this source.
func (s *Source) DisplaySource() any {
	if s.kind == KindURL {
		return s.url + ThumbnailSuffix
	}
	return s.handle
}

// Name is a short human readable label, the last path element of the source.
func (s *Source) Name() string {
	if s.kind == KindURL {
		if u, err := url.Parse(s.url); err == nil && u.Path != "" && u.Path != "/" {
			return path.Base(u.Path)
		}
		return s.url
	}
	if p, ok := s.handle.(string); ok {
		return filepath.Base(p)
	}
	return fmt.Sprint(s.handle)
}

func (s *Source) String() string {
	return fmt.Sprintf("%s:%v", s.kind, s.Value())
}

// Parse turns a command line argument into a source. Anything with an http(s)
// scheme is a URL, everything else is treated as a local handle.
func Parse(arg string) *Source {
	if u, err := url.Parse(arg); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return URL(arg)
	}
	return Local(arg)
}
