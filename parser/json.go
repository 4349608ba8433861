package parser

import "encoding/json"

type jsonResult struct {
	Success bool        `json:"success" yaml:"success"`
	Message string      `json:"message" yaml:"message"`
	Error   *jsonError  `json:"error,omitempty" yaml:"error,omitempty"`
	Steps   []*jsonStep `json:"steps" yaml:"steps"`
}

type jsonStep struct {
	Index  int      `json:"index" yaml:"index"`
	Stack  []string `json:"stack" yaml:"stack,flow"`
	Input  []string `json:"input" yaml:"input,flow"`
	Action string   `json:"action" yaml:"action"`
}

type jsonError struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Message  string   `json:"message" yaml:"message"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int      `json:"column,omitempty" yaml:"column,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty,flow"`
	Found    string   `json:"found,omitempty" yaml:"found,omitempty"`
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toJSON())
}

// MarshalYAML lets gopkg.in/yaml.v3 encode a Result with the same shape as
// its JSON form.
func (r *Result) MarshalYAML() (any, error) {
	return r.toJSON(), nil
}

func (r *Result) toJSON() *jsonResult {
	jr := &jsonResult{
		Success: r.Success,
		Message: r.Message,
		Steps:   make([]*jsonStep, len(r.Steps)),
	}
	for i, s := range r.Steps {
		jr.Steps[i] = s.toJSON()
	}

	if serr := r.SyntaxError(); serr != nil {
		jr.Error = &jsonError{
			Kind:    serr.Kind.String(),
			Message: serr.Error(),
			Line:    serr.Line(),
			Column:  serr.Column(),
		}
		for _, t := range serr.Expected {
			jr.Error.Expected = append(jr.Error.Expected, string(t))
		}
		if serr.Kind != UnknownSymbol {
			jr.Error.Found = serr.Found.String()
		}
	}
	return jr
}

func (s Step) toJSON() *jsonStep {
	js := &jsonStep{
		Index:  s.Index,
		Stack:  make([]string, len(s.Stack)),
		Input:  make([]string, len(s.Input)),
		Action: s.Action.String(),
	}
	for i, sym := range s.Stack {
		js.Stack[i] = sym.String()
	}
	for i, it := range s.Input {
		js.Input[i] = it.String()
	}
	return js
}
