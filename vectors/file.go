package vectors

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	ssz "github.com/524119574/lcssz"
	"github.com/524119574/lcssz/lightclient"
)

// Entry is one record of a vector file.
type Entry struct {
	Name string        `json:"-"`
	SSZ  hexutil.Bytes `json:"ssz"`
	Root hexutil.Bytes `json:"root"`
}

// WriteJSON writes results as a JSON object keyed by name, in result order.
func WriteJSON(w io.Writer, results []Result) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range results {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(Entry{SSZ: r.SSZ, Root: r.Root[:]})
		if err != nil {
			return errors.Wrapf(err, "could not encode %s", r.Name)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

// ReadJSON reads a vector file, keeping the order of its entries.
func ReadJSON(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("unexpected token %v", tok)
		}
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return nil, errors.Wrapf(err, "could not decode entry %s", name)
		}
		e.Name = name
		entries = append(entries, e)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return entries, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.Errorf("expected %v, got %v", want, tok)
	}
	return nil
}

// Check decodes every entry with its light-client schema and verifies that it
// re-encodes to the same bytes and roots to the recorded root.
func Check(entries []Entry) error {
	for _, e := range entries {
		d, ok := lightclient.Schemas[e.Name]
		if !ok {
			return errors.Errorf("%s: unknown container", e.Name)
		}
		val, err := ssz.Decode(e.SSZ, d)
		if err != nil {
			return errors.Wrapf(err, "%s", e.Name)
		}
		enc, err := ssz.Encode(val, d)
		if err != nil {
			return errors.Wrapf(err, "%s", e.Name)
		}
		if !bytes.Equal(enc, e.SSZ) {
			return errors.Errorf("%s: re-encoding differs from vector", e.Name)
		}
		root, err := ssz.HashTreeRoot(val, d)
		if err != nil {
			return errors.Wrapf(err, "%s", e.Name)
		}
		if !bytes.Equal(root[:], e.Root) {
			return errors.Errorf("%s: root %s, vector has %s", e.Name, hexutil.Encode(root[:]), e.Root)
		}
	}
	return nil
}
