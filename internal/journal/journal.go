package journal

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmpty is returned when dropping from a journal with no entries.
var ErrEmpty = errors.New("journal is empty")

// Journal is an append-only log of mutating requests, framed as a stream of
// msgpack maps. It lives in memory; nothing touches the disk.
type Journal struct {
	mu      sync.Mutex
	buf     *bytes.Buffer
	entries int
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{buf: new(bytes.Buffer)}
}

// Append records one request.
func (j *Journal) Append(req map[string]interface{}) error {
	if _, ok := req["command"].(string); !ok {
		return errors.New("journal: request has no command")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := msgpack.NewEncoder(j.buf).Encode(req); err != nil {
		return err
	}
	j.entries++
	return nil
}

// Requests decodes every recorded request in order.
func (j *Journal) Requests() ([]map[string]interface{}, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return decodeAll(bytes.NewReader(j.buf.Bytes()))
}

// DropLast removes the newest request and returns it.
func (j *Journal) DropLast() (map[string]interface{}, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.entries == 0 {
		return nil, ErrEmpty
	}
	requests, err := decodeAll(bytes.NewReader(j.buf.Bytes()))
	if err != nil {
		return nil, err
	}

	last := requests[len(requests)-1]
	rebuilt := new(bytes.Buffer)
	enc := msgpack.NewEncoder(rebuilt)
	for _, req := range requests[:len(requests)-1] {
		if err := enc.Encode(req); err != nil {
			return nil, err
		}
	}
	j.buf = rebuilt
	j.entries--
	return last, nil
}

// Len returns the number of recorded requests.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.entries
}

// Size returns the encoded size in bytes.
func (j *Journal) Size() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.buf.Len()
}

// Reset drops every request.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.buf.Reset()
	j.entries = 0
}

func decodeAll(r io.Reader) ([]map[string]interface{}, error) {
	dec := msgpack.NewDecoder(r)
	var requests []map[string]interface{}
	for {
		var req map[string]interface{}
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
