package runner

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/renproject/surge"

	shamir "github.com/renproject/shamir-recovery"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formats that a report can be written in.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatBinary = "binary"
	FormatCBOR   = "cbor"
)

// Result is the outcome of solving one case: either its secret, or the error
// that stopped it from being solved.
type Result struct {
	Case   string
	Secret *big.Int
	Err    error
}

// String implements the Stringer interface.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%v: Error = %v", r.Case, r.Err)
	}
	return fmt.Sprintf("%v: Secret = %v", r.Case, r.Secret)
}

// resultDoc is the document form of a result, shared by the json and cbor
// encodings. The secret is a decimal string, since it can exceed the range of
// JSON numbers.
type resultDoc struct {
	Case   string `json:"case" cbor:"case"`
	Secret string `json:"secret,omitempty" cbor:"secret,omitempty"`
	Error  string `json:"error,omitempty" cbor:"error,omitempty"`
}

func (r Result) doc() resultDoc {
	secret, msg := r.wire()
	return resultDoc{Case: r.Case, Secret: secret, Error: msg}
}

func (r *Result) fromDoc(doc resultDoc) error {
	*r = Result{Case: doc.Case}
	if doc.Error != "" {
		r.Err = errors.New(doc.Error)
		return nil
	}
	if doc.Secret != "" {
		secret, ok := new(big.Int).SetString(doc.Secret, 10)
		if !ok {
			return errors.Errorf("invalid secret %q", doc.Secret)
		}
		r.Secret = secret
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.doc())
}

// UnmarshalJSON implements the json.Unmarshaler interface. Errors are
// restored as plain errors with the original message.
func (r *Result) UnmarshalJSON(data []byte) error {
	var doc resultDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return r.fromDoc(doc)
}

// MarshalCBOR implements the cbor.Marshaler interface.
func (r Result) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.doc())
}

// UnmarshalCBOR implements the cbor.Unmarshaler interface.
func (r *Result) UnmarshalCBOR(data []byte) error {
	var doc resultDoc
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return err
	}
	return r.fromDoc(doc)
}

// SizeHint implements the surge.SizeHinter interface.
func (r Result) SizeHint() int {
	secret, msg := r.wire()
	return surge.SizeHint(r.Case) + surge.SizeHint(secret) + surge.SizeHint(msg)
}

// Marshal implements the surge.Marshaler interface. The secret is written as
// its decimal string, which is empty when the case failed.
func (r Result) Marshal(buf []byte, rem int) ([]byte, int, error) {
	secret, msg := r.wire()
	buf, rem, err := surge.Marshal(r.Case, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Marshal(secret, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return surge.Marshal(msg, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (r *Result) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var id, secret, msg string
	buf, rem, err := surge.Unmarshal(&id, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&secret, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&msg, buf, rem)
	if err != nil {
		return buf, rem, err
	}

	*r = Result{Case: id}
	if msg != "" {
		r.Err = errors.New(msg)
	}
	if secret != "" {
		s, ok := new(big.Int).SetString(secret, 10)
		if !ok {
			return buf, rem, errors.Errorf("invalid secret %q", secret)
		}
		r.Secret = s
	}
	return buf, rem, nil
}

func (r Result) wire() (secret, msg string) {
	if r.Err != nil {
		return "", r.Err.Error()
	}
	if r.Secret != nil {
		return r.Secret.String(), ""
	}
	return "", ""
}

// minResultSize is the encoded size of a result with three empty strings.
var minResultSize = 3 * surge.SizeHintString("")

// Report holds the results of a run, in the order the cases were given.
type Report []Result

// Failed returns the number of cases that could not be solved.
func (report Report) Failed() int {
	failed := 0
	for _, r := range report {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}

// SizeHint implements the surge.SizeHinter interface.
func (report Report) SizeHint() int {
	size := surge.SizeHintU32
	for i := range report {
		size += report[i].SizeHint()
	}
	return size
}

// Marshal implements the surge.Marshaler interface.
func (report Report) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU32(uint32(len(report)), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	for i := range report {
		buf, rem, err = report[i].Marshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (report *Report) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var l uint32
	buf, rem, err := shamir.UnmarshalLen(&l, minResultSize, buf, rem)
	if err != nil {
		return buf, rem, err
	}

	*report = make(Report, l)
	for i := range *report {
		buf, rem, err = (*report)[i].Unmarshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// Write writes the report to the writer in the given format. The text format
// has one line per case. The json and cbor formats are arrays of documents,
// and the binary format is the surge encoding of the report.
func (report Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatText:
		for _, r := range report {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return errors.Wrap(err, "write result")
			}
		}
		return nil
	case FormatJSON:
		docs := make([]resultDoc, len(report))
		for i := range report {
			docs[i] = report[i].doc()
		}
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal report")
		}
		_, err = w.Write(append(data, '\n'))
		return errors.Wrap(err, "write report")
	case FormatCBOR:
		data, err := cbor.Marshal(report)
		if err != nil {
			return errors.Wrap(err, "marshal report")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "write report")
	case FormatBinary:
		data, err := surge.ToBinary(report)
		if err != nil {
			return errors.Wrap(err, "marshal report")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "write report")
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
