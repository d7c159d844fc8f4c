package loader

import (
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// ReasonCode classifies why a staged row was rejected.
type ReasonCode string

const (
	ReasonDuplicateKey           ReasonCode = "DUPLICATE_KEY"
	ReasonMissingForeignKey      ReasonCode = "MISSING_FOREIGN_KEY"
	ReasonInvariantViolation     ReasonCode = "INVARIANT_VIOLATION"
	ReasonMalformedRequiredField ReasonCode = "MALFORMED_REQUIRED_FIELD"
)

// Rejection records one refused row: its batch position, the raw identity text
// when one was present, and a single specific reason.
type Rejection struct {
	Row    int        `json:"row"`
	Key    string     `json:"key,omitempty"`
	Reason ReasonCode `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// Report aggregates per-row outcomes of one entity batch. Rejections keep
// batch order.
type Report struct {
	Entity     staging.Entity `json:"entity"`
	Accepted   int            `json:"accepted"`
	Rejected   int            `json:"rejected"`
	Rejections []Rejection    `json:"rejections,omitempty"`
}

func newReport(entity staging.Entity) Report {
	return Report{Entity: entity}
}

func (r *Report) accept() {
	r.Accepted++
}

func (r *Report) reject(row int, key string, reason ReasonCode, detail string) {
	r.Rejected++
	r.Rejections = append(r.Rejections, Rejection{
		Row:    row,
		Key:    key,
		Reason: reason,
		Detail: detail,
	})
}

// Summary renders a one-line human-readable digest for logs.
func (r Report) Summary() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(string(r.Entity))
	buf.WriteString(": accepted=")
	buf.WriteString(strconv.Itoa(r.Accepted))
	buf.WriteString(" rejected=")
	buf.WriteString(strconv.Itoa(r.Rejected))

	for _, rej := range r.Rejections {
		buf.WriteString(" [row ")
		buf.WriteString(strconv.Itoa(rej.Row))
		if rej.Key != "" {
			buf.WriteString(" key ")
			buf.WriteString(rej.Key)
		}
		buf.WriteString(" ")
		buf.WriteString(string(rej.Reason))
		buf.WriteString("]")
	}

	return buf.String()
}
