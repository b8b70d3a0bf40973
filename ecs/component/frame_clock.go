package component

type TimingMode string

const (
	// TimingMeasured derives dt from the wall clock between ticks.
	TimingMeasured TimingMode = "measured"
	// TimingFixed uses 1/TPS for every tick.
	TimingFixed TimingMode = "fixed"
)

// FrameClock is the singleton holding per-tick timing.
type FrameClock struct {
	Mode    TimingMode
	TPS     int
	MaxStep float64

	DT     float64
	FPS    int
	Frames uint64
}

var FrameClockComponent = NewComponent[FrameClock]()
