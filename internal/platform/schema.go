package platform

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

type schemaState struct {
	ctx    *cue.Context
	schema cue.Value
}

// loadSchema compiles the embedded platform schema exactly once. The result
// is read-only and shared by every Load in the process, so concurrent loads
// of distinct platforms need no synchronization.
var loadSchema = sync.OnceValues(func() (schemaState, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return schemaState{}, fmt.Errorf("compiling platform schema: %w", err)
	}
	schema := v.LookupPath(cue.ParsePath("#Platform"))
	if err := schema.Err(); err != nil {
		return schemaState{}, fmt.Errorf("resolving #Platform: %w", err)
	}
	return schemaState{ctx: ctx, schema: schema}, nil
})

// SchemaError reports a platform file that failed schema validation.
type SchemaError struct {
	File    string
	Message string
	Pos     token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// validateSchema checks the raw platform file contents against the shared
// schema. Required fields (identifier, arch) must be present and concrete;
// unknown fields are rejected because #Platform is closed.
func validateSchema(path string, data []byte) error {
	st, err := loadSchema()
	if err != nil {
		return err
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return newSchemaError(path, err)
	}
	doc := st.ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return newSchemaError(path, err)
	}

	unified := st.schema.Unify(doc)
	if err := unified.Err(); err != nil {
		return newSchemaError(path, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return newSchemaError(path, err)
	}
	return nil
}

// newSchemaError extracts position info from a CUE error, keeping the first
// underlying error the way CUE's own diagnostics order them.
func newSchemaError(path string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &SchemaError{File: path, Message: err.Error()}
	}
	first := errs[0]
	schemaErr := &SchemaError{File: path, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		schemaErr.Pos = positions[0]
	}
	return schemaErr
}
