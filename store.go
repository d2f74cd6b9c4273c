package vibrant

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSlots is the fixed capacity of a published palette. Runs that find
// fewer clusters leave the remaining slots at the White sentinel; runs asked
// for more colors clamp the excess into the last slot.
const PaletteSlots = 5

// Snapshot is the immutable result of one detection run. Every read of a
// Store observes a whole snapshot, never a mix of two runs.
type Snapshot struct {
	Palette [PaletteSlots]colorful.Color
	Vibrant colorful.Color
}

func emptySnapshot() Snapshot {
	s := Snapshot{Vibrant: White}
	for i := range s.Palette {
		s.Palette[i] = White
	}
	return s
}

// Store runs the sampling → histogram → clustering → vibrancy pipeline and
// publishes the latest result as an atomically swapped Snapshot. A failed
// run never disturbs the previously published snapshot.
//
// Store is safe for concurrent reads. Overlapping detection runs are not
// serialized; the last one to finish wins. Callers that need deterministic
// ordering should serialize their own calls.
type Store struct {
	mu      sync.RWMutex
	snap    Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
}

func NewStore() *Store {
	return &Store{
		snap: emptySnapshot(),
		subs: make(map[int]func(Snapshot)),
	}
}

// DetectColors runs the full pipeline over img and publishes the result.
// Errors wrap ErrInvalidImageSize or ErrImageProcessingFailed; on error the
// previous snapshot stays published.
func (s *Store) DetectColors(img image.Image, opt Options) error {
	if err := opt.validate(); err != nil {
		return err
	}
	pix, err := Sample(img, opt.Width, opt.Height)
	if err != nil {
		return err
	}

	hist := HistogramFromRGBA(pix)
	reps := clusterByMethod(hist, opt.MaxColors, opt.Method)

	next := emptySnapshot()
	next.Vibrant = FindMostVibrant(reps)
	for i, c := range reps {
		next.Palette[min(i, PaletteSlots-1)] = c
	}

	s.publish(next)
	return nil
}

// DetectColorsFromFile decodes the image file at path and runs DetectColors.
// Failures are logged, not returned; use DetectColors when errors matter.
func (s *Store) DetectColorsFromFile(path string, opt Options) {
	img, err := decodeImageFile(path)
	if err != nil {
		log.Printf("vibrant: detect from %s: %v", path, err)
		return
	}
	if err := s.DetectColors(img, opt); err != nil {
		log.Printf("vibrant: detect from %s: %v", path, err)
	}
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Snapshot returns the currently published result.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Palette returns the palette slots of the current snapshot.
func (s *Store) Palette() [PaletteSlots]colorful.Color {
	return s.Snapshot().Palette
}

// Vibrant returns the vibrant color of the current snapshot.
func (s *Store) Vibrant() colorful.Color {
	return s.Snapshot().Vibrant
}

// Subscribe registers fn to be called with each newly published snapshot.
// The returned cancel func removes the subscription; it is safe to call more
// than once. Callbacks run synchronously on the detecting goroutine, after
// the snapshot is visible to readers.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(next Snapshot) {
	s.mu.Lock()
	s.snap = next
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(next)
	}
}
