package engine

type Game struct {
	Config *Config
	State  interface{}

	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error

// Render draws frame number frame, counting from zero.
type Render func(frame int, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
