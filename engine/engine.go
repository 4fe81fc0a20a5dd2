package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/linmath/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	default:
		return "uninitialized"
	}
}

// Engine drives a Game headlessly: no window, no input, one frame per
// loop iteration until the configured frame count or Stop.
type Engine struct {
	currentStage atomic.Uint32
	gameInstance *Game
	stopRequest  atomic.Bool
	width        uint32
	height       uint32
	frames       int
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	frameCount   int
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.Config == nil {
		return nil, fmt.Errorf("engine needs a game with a config: %w", core.ErrInvalidArgument)
	}
	if err := g.Config.Validate(); err != nil {
		core.LogError("%v", err)
		return nil, err
	}
	e := &Engine{
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		width:        g.Config.Application.Width,
		height:       g.Config.Application.Height,
		frames:       g.Config.Application.Frames,
	}
	e.setStage(EngineStageBootComplete)
	return e, nil
}

func (e *Engine) Stage() Stage {
	return Stage(e.currentStage.Load())
}

func (e *Engine) setStage(s Stage) {
	e.currentStage.Store(uint32(s))
	core.LogDebug("engine stage: %s", s)
}

func (e *Engine) Initialize() error {
	e.setStage(EngineStageInitializing)
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return fmt.Errorf("game initialize: %w", err)
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return fmt.Errorf("game resize: %w", err)
		}
	}
	e.setStage(EngineStageInitialized)
	return nil
}

/**
 * @brief Runs the frame loop: update, then render, once per frame. It
 * returns after the configured number of frames, after Stop, or on the
 * first game error.
 */
func (e *Engine) Run() error {
	if e.Stage() != EngineStageInitialized {
		return fmt.Errorf("run in stage %s: %w", e.Stage(), core.ErrInvalidArgument)
	}
	e.setStage(EngineStageRunning)
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for !e.stopRequest.Load() {
		if e.frames > 0 && e.frameCount >= e.frames {
			break
		}
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("Game update failed, shutting down.")
				return fmt.Errorf("frame %d update: %w", e.frameCount, err)
			}
		}
		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(e.frameCount, delta); err != nil {
				core.LogError("Game render failed, shutting down.")
				return fmt.Errorf("frame %d render: %w", e.frameCount, err)
			}
		}

		e.clock.Update()
		e.metrics.Update(e.clock.Elapsed() - currentTime)
		e.lastTime = currentTime
		e.frameCount++
	}

	fps, frameTime := e.metrics.Frame()
	core.LogInfo("rendered %d frames (%.1f fps, %.2f ms/frame)", e.frameCount, fps, frameTime)
	return nil
}

// Stop asks Run to return after the current frame. It is safe to call
// from any goroutine.
func (e *Engine) Stop() {
	e.stopRequest.Store(true)
}

func (e *Engine) Shutdown() error {
	e.setStage(EngineStageShuttingDown)
	e.clock.Stop()
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return fmt.Errorf("game shutdown: %w", err)
		}
	}
	e.setStage(EngineStageUninitialized)
	return nil
}

func (e *Engine) FrameCount() int {
	return e.frameCount
}

// GetFramebufferSize returns the width and height (in this order)
// of the frames being rendered.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}
