package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/contactnet/contact"
	"github.com/shopspring/decimal"
)

// Column names of the contact-record format.
const (
	ColH1       = "h1"
	ColM1       = "m1"
	ColH2       = "h2"
	ColM2       = "m2"
	ColDuration = "duration"
	ColDay      = "day"
	ColHour     = "hour"
	ColAge1     = "age1"
	ColSex1     = "sex1"
	ColAge2     = "age2"
	ColSex2     = "sex2"
)

// RequiredColumns must appear in every header.
var RequiredColumns = []string{ColH1, ColM1, ColH2, ColM2, ColDuration, ColDay, ColHour}

// header maps a lower-cased column name to its field index.
type header map[string]int

func (h header) get(rec []string, col string) string {
	i, ok := h[col]
	if !ok {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseHeader(rec []string) (header, error) {
	h := make(header, len(rec))
	for i, name := range rec {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := h[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return h, nil
}

// ReadContacts decodes contact events from a delimited stream with a header row.
//
// Required columns: h1,m1,h2,m2,duration,day,hour. Optional: age1,sex1,age2,sex2.
// Column order is free and extra columns are ignored. Participant IDs are
// ParticipantID(h, m) and the household is h. Ages may be written as
// integral decimals ("23.0"); an empty age is unknown.
//
// name labels errors (usually the file path). Errors wrap ErrMissingColumn
// or ErrMalformedRecord with name and line.
func ReadContacts(r io.Reader, name string, opts ...Option) ([]contact.Event, error) {
	o := resolve(opts)
	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, name, err)
	}
	h, err := parseHeader(first)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var events []contact.Event
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, name, err)
		}
		line, _ := cr.FieldPos(0)
		ev, err := decodeEvent(h, rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedRecord, name, line, err)
		}
		events = append(events, ev)
	}

	return events, nil
}

// ReadContactFile opens path and decodes it with ReadContacts.
func ReadContactFile(path string, opts ...Option) ([]contact.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadContacts(f, path, opts...)
}

// ReadContactFiles decodes every file and concatenates their events in the
// order given (within-household files, then across-household files, ...).
func ReadContactFiles(paths []string, opts ...Option) ([]contact.Event, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	var all []contact.Event
	for _, p := range paths {
		evs, err := ReadContactFile(p, opts...)
		if err != nil {
			return nil, err
		}
		all = append(all, evs...)
	}
	return all, nil
}

func decodeEvent(h header, rec []string) (contact.Event, error) {
	var ev contact.Event
	var err error

	if ev.A, err = decodeParticipant(h, rec, ColH1, ColM1, ColAge1, ColSex1); err != nil {
		return ev, err
	}
	if ev.B, err = decodeParticipant(h, rec, ColH2, ColM2, ColAge2, ColSex2); err != nil {
		return ev, err
	}

	raw := h.get(rec, ColDuration)
	if ev.Duration, err = decimal.NewFromString(raw); err != nil {
		return ev, fmt.Errorf("duration %q is not numeric", raw)
	}
	if ev.Duration.IsNegative() {
		return ev, fmt.Errorf("duration %s is negative", ev.Duration)
	}
	if ev.Day, err = parseInt(h.get(rec, ColDay)); err != nil {
		return ev, fmt.Errorf("day: %v", err)
	}
	if ev.Hour, err = parseInt(h.get(rec, ColHour)); err != nil {
		return ev, fmt.Errorf("hour: %v", err)
	}

	return ev, nil
}

func decodeParticipant(h header, rec []string, colH, colM, colAge, colSex string) (contact.Participant, error) {
	hh, m := h.get(rec, colH), h.get(rec, colM)
	if hh == "" || m == "" {
		return contact.Participant{}, fmt.Errorf("empty %s/%s", colH, colM)
	}
	p := contact.Participant{
		ID:        contact.ParticipantID(hh, m),
		Household: hh,
		Sex:       h.get(rec, colSex),
	}
	if raw := h.get(rec, colAge); raw != "" && !strings.EqualFold(raw, "nan") {
		age, err := parseInt(raw)
		if err != nil {
			return p, fmt.Errorf("%s: %v", colAge, err)
		}
		p.Age = &age
	}
	return p, nil
}

// parseInt accepts "12" and integral decimals such as "12.0".
func parseInt(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(d.IntPart()), nil
}
