package renderer

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeGL21 selects the OpenGL 2.1 fixed-function backend.
	BackendTypeGL21 RendererBackendType = iota

	// BackendTypeRecorder selects the in-memory backend that records commands instead of drawing them.
	BackendTypeRecorder
)

func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeGL21:
		return "gl21"
	case BackendTypeRecorder:
		return "recorder"
	default:
		return "unknown"
	}
}

// RendererBackend executes Commands against a concrete drawing API.
// Backends are driven from the thread that owns the drawing context.
type RendererBackend interface {
	// Type reports which implementation this backend is.
	Type() RendererBackendType

	// Init prepares the drawing context. It is called once by NewRenderer.
	//
	// Returns:
	//   - error: an error if the context could not be initialised
	Init() error

	// Execute runs a single command.
	//
	// Parameters:
	//   - cmd: the command to execute
	//
	// Returns:
	//   - error: an error if the command is not supported or fails
	Execute(cmd Command) error

	// Release frees any resources held by the backend.
	Release()
}

// SetupObserver is implemented by backends that want to know where one-time
// setup ends and the first frame begins.
type SetupObserver interface {
	// EndSetup is called once the commands passed to Renderer.Setup have run.
	EndSetup()
}
