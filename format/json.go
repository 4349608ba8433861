package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/lalg/analysis"
)

type JSONEncoder struct {
	w      io.Writer
	report *analysis.Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(report *analysis.Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildDocument(e.report), "", "  ")
}
