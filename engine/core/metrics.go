package core

// frameWindow is the number of frames the running average is computed over.
const frameWindow = 30

// FrameStats keeps a running average of frame times and a frames-per-second
// counter. One instance belongs to one frame loop; it is not safe for
// concurrent use.
type FrameStats struct {
	times  [frameWindow]float64
	cursor int

	avgMS         float64
	frames        int
	accumulatedMS float64
	fps           float64
}

// Create a new FrameStats
func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

// Update records the duration of one frame, given in seconds.
func (s *FrameStats) Update(frameElapsed float64) {
	frameMS := frameElapsed * 1000.0

	s.times[s.cursor] = frameMS
	if s.cursor == frameWindow-1 {
		sum := 0.0
		for i := 0; i < frameWindow; i++ {
			sum += s.times[i]
		}
		s.avgMS = sum / frameWindow
	}
	s.cursor = (s.cursor + 1) % frameWindow

	s.accumulatedMS += frameMS
	if s.accumulatedMS > 1000 {
		s.fps = float64(s.frames)
		s.accumulatedMS -= 1000
		s.frames = 0
	}
	s.frames++
}

// FPS returns the frames counted during the last full second.
func (s *FrameStats) FPS() float64 {
	return s.fps
}

// FrameTimeMS returns the frame time in milliseconds averaged over the last
// window.
func (s *FrameStats) FrameTimeMS() float64 {
	return s.avgMS
}
