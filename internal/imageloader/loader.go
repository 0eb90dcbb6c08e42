package imageloader

import (
	"fmt"
	"sync"
)

// AssetID names a bundled image such as the placeholder or the add icon.
type AssetID string

const (
	AssetPlaceholder AssetID = "photo_default"
	AssetError       AssetID = "photo_default"
	AssetAdd         AssetID = "add_pic"
)

type FitMode string

const FitCenterCrop FitMode = "centerCrop"

// Request is everything a loader needs to fill one surface. Source is either a
// display source produced by photo.Source or an AssetID.
type Request struct {
	Source      any
	Placeholder AssetID
	Error       AssetID
	Fit         FitMode
}

func (r Request) key() string {
	return fmt.Sprintf("%T|%v|%s|%s|%s", r.Source, r.Source, r.Placeholder, r.Error, r.Fit)
}

// Loader fills surfaces asynchronously. Display must not block; completion is
// written straight into the surface and announced with a LoadedMsg.
type Loader interface {
	Display(target *Surface, req Request)
}

// LoadedMsg tells the host that a surface changed and a new frame is needed.
type LoadedMsg struct {
	Target *Surface
}

type State int

const (
	StateEmpty State = iota
	StatePlaceholder
	StateLoaded
	StateFailed
)

// Surface is the drawable area of one grid slot. A surface keeps the last
// request it was asked to show; completions of older requests are ignored.
type Surface struct {
	mu         sync.Mutex
	width      int
	height     int
	requestKey string
	generation uint64
	content    string
	state      State
}

func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Resize changes the surface size. A different size invalidates the current
// content so the next Display call reloads it.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == width && s.height == height {
		return
	}
	s.width = width
	s.height = height
	s.requestKey = ""
}

func (s *Surface) Content() (string, State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content, s.state
}

// begin records req as the current request. It returns false if req is
// already being shown, otherwise the generation to complete with.
func (s *Surface) begin(req Request) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%s|%dx%d", req.key(), s.width, s.height)
	if key == s.requestKey {
		return 0, false
	}
	s.requestKey = key
	s.generation++
	return s.generation, true
}

func (s *Surface) complete(generation uint64, content string, state State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.content = content
	s.state = state
	return true
}
