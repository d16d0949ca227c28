// Package serial implements world (de)serialization to JSON and a compact
// binary form, per spec.md §6. Callers register a codec per component type
// with Register (JSON, using encoding/json) and/or RegisterBinary (a
// caller-supplied fixed layout), then drive the whole world through a
// Context.
package serial

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"

	"go.uber.org/multierr"

	"github.com/corvidlabs/sparsecs"
)

type jsonCodec struct {
	name   string
	id     int
	encode func(w *sparsecs.World, e sparsecs.Entity) (json.RawMessage, bool, error)
	decode func(w *sparsecs.World, e sparsecs.Entity, raw json.RawMessage) error
}

type binaryCodec struct {
	name   string
	id     int
	encode func(w *sparsecs.World, e sparsecs.Entity, buf *bytes.Buffer) (bool, error)
	decode func(w *sparsecs.World, e sparsecs.Entity, r *bytes.Reader) error
}

// Context holds the per-name and per-component-ID codec registry that
// drives Serialize/DeserializeJSON and SerializeBinary/DeserializeBinary.
// A Context is reusable across many worlds sharing the same component set.
type Context struct {
	jsonByName map[string]*jsonCodec
	jsonByID   map[int]*jsonCodec
	binByName  map[string]*binaryCodec
	binByID    map[int]*binaryCodec
	reporter   sparsecs.ErrorReporter
}

// NewContext creates an empty Context. Results are silently discarded
// unless SetErrorReporter is called.
func NewContext() *Context {
	return &Context{
		jsonByName: make(map[string]*jsonCodec),
		jsonByID:   make(map[int]*jsonCodec),
		binByName:  make(map[string]*binaryCodec),
		binByID:    make(map[int]*binaryCodec),
		reporter:   sparsecs.NopReporter{},
	}
}

// SetErrorReporter routes every failing Result produced during
// deserialization to reporter, in addition to being folded into the
// returned Result's aggregated error.
func (c *Context) SetErrorReporter(reporter sparsecs.ErrorReporter) {
	if reporter != nil {
		c.reporter = reporter
	}
}

// Register adds a JSON codec for component type T under name, using
// encoding/json for the component value itself — struct tags on T control
// field names exactly as they would for any other Go value.
func Register[T any](ctx *Context, name string) {
	id := sparsecs.ComponentID[T]()
	codec := &jsonCodec{
		name: name,
		id:   id,
		encode: func(w *sparsecs.World, e sparsecs.Entity) (json.RawMessage, bool, error) {
			v, ok := sparsecs.GetComponent[T](w, e)
			if !ok {
				return nil, false, nil
			}
			raw, err := json.Marshal(v)
			return raw, true, err
		},
		decode: func(w *sparsecs.World, e sparsecs.Entity, raw json.RawMessage) error {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			sparsecs.AddComponent[T](w, e, v)
			return nil
		},
	}
	ctx.jsonByName[name] = codec
	ctx.jsonByID[id] = codec
}

// RegisterBinary adds a binary codec for component type T under name.
// encode/decode own T's exact wire layout (e.g. binary.Write of fixed-width
// fields) — the envelope framing around them (name, lengths) is handled by
// SerializeBinary/DeserializeBinary.
func RegisterBinary[T any](ctx *Context, name string, encode func(T, *bytes.Buffer) error, decode func(*bytes.Reader) (T, error)) {
	id := sparsecs.ComponentID[T]()
	codec := &binaryCodec{
		name: name,
		id:   id,
		encode: func(w *sparsecs.World, e sparsecs.Entity, buf *bytes.Buffer) (bool, error) {
			v, ok := sparsecs.GetComponent[T](w, e)
			if !ok {
				return false, nil
			}
			return true, encode(*v, buf)
		},
		decode: func(w *sparsecs.World, e sparsecs.Entity, r *bytes.Reader) error {
			v, err := decode(r)
			if err != nil {
				return err
			}
			sparsecs.AddComponent[T](w, e, v)
			return nil
		},
	}
	ctx.binByName[name] = codec
	ctx.binByID[id] = codec
}

type jsonEntity struct {
	ID         uint64                     `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}

type jsonEnvelope struct {
	Entities []jsonEntity `json:"entities"`
}

// Serialize encodes every live entity in w and its registered components to
// the JSON envelope {"entities":[{"id":...,"components":{...}}]}.
func (c *Context) Serialize(w *sparsecs.World) ([]byte, sparsecs.Result) {
	env := jsonEnvelope{}
	for i := 0; i < w.GetEntityCount(); i++ {
		e := w.GetEntityAt(uint32(i))
		if !w.IsAlive(e) {
			continue
		}
		comps := make(map[string]json.RawMessage)
		for id, codec := range c.jsonByID {
			if !w.HasComponentID(e, id) {
				continue
			}
			raw, ok, err := codec.encode(w, e)
			if err != nil {
				return nil, sparsecs.Failf(sparsecs.ErrInternal, "encode %q on entity %d: %v", codec.name, e.Pack(), err)
			}
			if ok {
				comps[codec.name] = raw
			}
		}
		env.Entities = append(env.Entities, jsonEntity{ID: e.Pack(), Components: comps})
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, sparsecs.Failf(sparsecs.ErrInternal, "marshal world: %v", err)
	}
	return data, sparsecs.Ok()
}

// DeserializeJSON populates w from a JSON envelope produced by Serialize.
// Entities are recreated with CreateEntityWithID so their original index
// and generation survive the round trip. A component name with no
// registered codec, or one that fails to decode, is reported through the
// configured ErrorReporter and folded into the returned Result, but does
// not stop the remaining entities/components from being applied.
func (c *Context) DeserializeJSON(w *sparsecs.World, data []byte) sparsecs.Result {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return sparsecs.Failf(sparsecs.ErrInvalidPayload, "unmarshal world: %v", err)
	}
	var errs error
	for _, ent := range env.Entities {
		id := sparsecs.Unpack(ent.ID)
		w.CreateEntityWithID(id)
		for name, raw := range ent.Components {
			codec, ok := c.jsonByName[name]
			if !ok {
				res := sparsecs.Failf(sparsecs.ErrComponentNotRegistered, "component %q not registered", name)
				c.reporter.Report(res)
				errs = multierr.Append(errs, res)
				continue
			}
			if err := codec.decode(w, id, raw); err != nil {
				res := sparsecs.Failf(sparsecs.ErrTypeMismatch, "decode %q on entity %d: %v", name, ent.ID, err)
				c.reporter.Report(res)
				errs = multierr.Append(errs, res)
			}
		}
	}
	if errs != nil {
		return sparsecs.Result{Code: sparsecs.ErrInvalidPayload, Err: errs}
	}
	return sparsecs.Ok()
}

// SerializeBinary encodes every live entity in w to the little-endian
// envelope: u32 entity count, then per entity a u64 id and u32 component
// count, then per component a u32 name length, the name bytes, and the
// component's own binary body with no further framing.
func (c *Context) SerializeBinary(w *sparsecs.World) ([]byte, sparsecs.Result) {
	type entry struct {
		id   uint64
		body [][2][]byte // [name bytes, component body bytes]
	}
	var entries []entry
	for i := 0; i < w.GetEntityCount(); i++ {
		e := w.GetEntityAt(uint32(i))
		if !w.IsAlive(e) {
			continue
		}
		var parts [][2][]byte
		for id, codec := range c.binByID {
			if !w.HasComponentID(e, id) {
				continue
			}
			var buf bytes.Buffer
			ok, err := codec.encode(w, e, &buf)
			if err != nil {
				return nil, sparsecs.Failf(sparsecs.ErrInternal, "encode %q on entity %d: %v", codec.name, e.Pack(), err)
			}
			if ok {
				parts = append(parts, [2][]byte{[]byte(codec.name), buf.Bytes()})
			}
		}
		entries = append(entries, entry{id: e.Pack(), body: parts})
	}

	var out bytes.Buffer
	writeU32(&out, uint32(len(entries)))
	for _, ent := range entries {
		writeU64(&out, ent.id)
		writeU32(&out, uint32(len(ent.body)))
		for _, part := range ent.body {
			writeU32(&out, uint32(len(part[0])))
			out.Write(part[0])
			out.Write(part[1])
		}
	}
	return out.Bytes(), sparsecs.Ok()
}

// DeserializeBinary populates w from a binary envelope produced by
// SerializeBinary. Because component bodies carry no length prefix of their
// own, a component name with no registered binary codec can't be skipped
// safely — it aborts the read and returns ErrComponentNotRegistered, unlike
// DeserializeJSON's per-component recovery.
func (c *Context) DeserializeBinary(w *sparsecs.World, data []byte) sparsecs.Result {
	r := bytes.NewReader(data)
	entityCount, err := readU32(r)
	if err != nil {
		return sparsecs.Failf(sparsecs.ErrInvalidPayload, "read entity count: %v", err)
	}
	var errs error
	for i := uint32(0); i < entityCount; i++ {
		rawID, err := readU64(r)
		if err != nil {
			return sparsecs.Failf(sparsecs.ErrInvalidPayload, "read entity id: %v", err)
		}
		compCount, err := readU32(r)
		if err != nil {
			return sparsecs.Failf(sparsecs.ErrInvalidPayload, "read component count: %v", err)
		}
		id := sparsecs.Unpack(rawID)
		w.CreateEntityWithID(id)
		for j := uint32(0); j < compCount; j++ {
			nameLen, err := readU32(r)
			if err != nil {
				return sparsecs.Failf(sparsecs.ErrInvalidPayload, "read name length: %v", err)
			}
			nameBytes := make([]byte, nameLen)
			if _, err := io.ReadFull(r, nameBytes); err != nil {
				return sparsecs.Failf(sparsecs.ErrInvalidPayload, "read name: %v", err)
			}
			name := string(nameBytes)
			codec, ok := c.binByName[name]
			if !ok {
				res := sparsecs.Failf(sparsecs.ErrComponentNotRegistered, "component %q not registered", name)
				c.reporter.Report(res)
				return res
			}
			if err := codec.decode(w, id, r); err != nil {
				res := sparsecs.Failf(sparsecs.ErrTypeMismatch, "decode %q on entity %d: %v", name, rawID, err)
				c.reporter.Report(res)
				errs = multierr.Append(errs, res)
			}
		}
	}
	if errs != nil {
		return sparsecs.Result{Code: sparsecs.ErrInvalidPayload, Err: errs}
	}
	return sparsecs.Ok()
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func readU32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readU64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
