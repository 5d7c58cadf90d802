package tools

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"

	loggerpkg "nanoagent/pkg/logger"
)

// unknownToolResult is returned when the model requests a tool that is
// not in the catalog. The conversation continues; the model reads the
// marker and adapts.
const unknownToolResult = "Unknown tool"

type tool interface {
	name() string
	definition() anthropic.ToolUnionParam
	execute(input json.RawMessage) string
}

// Context carries shared dependencies into tool implementations.
type Context struct {
	Verbose bool
	Logger  loggerpkg.Logger
}

func (c Context) debugf(format string, args ...any) {
	loggerpkg.Debugf(c.Verbose, c.Logger, format, args...)
}

// Registry holds the fixed tool catalog and dispatches execution.
// Catalog order is registration order and never changes at runtime.
type Registry struct {
	registry map[string]tool
	params   []anthropic.ToolUnionParam
	ctx      Context
}

// New builds a registry with the five built-in tools.
func New(ctx Context) *Registry {
	if ctx.Logger == nil {
		ctx.Logger = loggerpkg.NopLogger{}
	}
	r := &Registry{
		registry: make(map[string]tool),
		ctx:      ctx,
	}

	r.register(&readFileTool{ctx: ctx})
	r.register(&writeFileTool{ctx: ctx})
	r.register(&editFileTool{ctx: ctx})
	r.register(&bashTool{ctx: ctx})
	r.register(&listDirTool{ctx: ctx})
	return r
}

func (r *Registry) register(impl tool) {
	r.registry[impl.name()] = impl
	r.params = append(r.params, impl.definition())
	r.ctx.debugf("[verbose] registered tool: %s", impl.name())
}

// Definitions returns the catalog advertised to the model, in order.
func (r *Registry) Definitions() []anthropic.ToolUnionParam {
	return r.params
}

// Run dispatches one invocation. It never fails: every outcome,
// including unknown tool names and malformed arguments, comes back as
// result text for the model to interpret.
func (r *Registry) Run(name string, input json.RawMessage) string {
	impl, ok := r.registry[name]
	if !ok {
		r.ctx.debugf("[verbose] unknown tool requested: %s", name)
		return unknownToolResult
	}
	return impl.execute(input)
}

// toolDefinition reflects a catalog entry schema from an argument struct.
func toolDefinition[T any](name, description string) anthropic.ToolUnionParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        name,
			Description: anthropic.String(description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schema.Properties,
				Required:   schema.Required,
			},
		},
	}
}

func errorResult(err error) string {
	return "Error: " + err.Error()
}
