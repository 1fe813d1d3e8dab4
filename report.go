package letterfreq

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"
)

// PageStat records what a single leaf page contributed to a run.
type PageStat struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
	Chars    int    `json:"chars"`
	Hash     string `json:"hash"`
}

// Report is the outcome of a counting run.
type Report struct {
	ID          string      `json:"id"`
	Site        string      `json:"site"`
	StartedAt   time.Time   `json:"startedAt"`
	FinishedAt  time.Time   `json:"finishedAt"`
	Pages       []PageStat  `json:"pages"`
	Frequencies Frequencies `json:"frequencies"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "report site required")
	}
	for _, f := range r.Frequencies {
		if f.Count <= 0 {
			return Errorf(EINVALID, "non-positive count %d for %q", f.Count, string(f.Key))
		}
	}
	return nil
}

// ReportWriter persists a finished report.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}

// ReportService stores reports and reads them back.
type ReportService interface {
	ReportWriter

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)
}

// Frequencies is a sorted frequency table. It marshals to a JSON object
// whose keys keep the slice order.
type Frequencies []Frequency

// MarshalJSON implements json.Marshaler.
func (f Frequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(string(e.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(e.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeFrequencies writes f as an indented JSON object to w, followed by
// a newline. Non-ASCII keys are written literally, including the line and
// paragraph separators U+2028 and U+2029.
func EncodeFrequencies(w io.Writer, f Frequencies) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

func marshalNoEscape(s string) ([]byte, error) {
	// encoding/json always escapes these two; they are valid JSON as is.
	if s == "\u2028" || s == "\u2029" {
		return []byte(`"` + s + `"`), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
