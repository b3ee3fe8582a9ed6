package rop

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"reflect"
	"unsafe"
)

// Hash is consistent with a deep-equality comparison of payloads within the
// same variant: payloads that reflect.DeepEqual accepts hash alike. Floats
// are canonicalized so 0 and -0 agree, maps are combined independent of
// iteration order, and cyclic pointers are written as back references.
func Hash(variant Variant, payload any) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{byte(variant)})
	if IsNil(payload) {
		return h.Sum64()
	}
	w := walker{}
	w.write(h, reflect.ValueOf(payload))
	return h.Sum64()
}

type visit struct {
	ptr unsafe.Pointer
	typ reflect.Type
}

// walker mirrors the traversal of reflect.DeepEqual. path holds the
// references currently being descended into.
type walker struct {
	path []visit
}

func (w *walker) write(h hash.Hash64, v reflect.Value) {
	if !v.IsValid() {
		_, _ = h.Write([]byte{0})
		return
	}
	_, _ = h.Write([]byte(v.Type().String()))
	_, _ = h.Write([]byte{'|'})

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(h, 1)
		} else {
			writeUint(h, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(h, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(h, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(h, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(h, real(c))
		writeFloat(h, imag(c))
	case reflect.String:
		writeUint(h, uint64(v.Len()))
		_, _ = h.Write([]byte(v.String()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.write(h, v.Index(i))
		}
	case reflect.Slice:
		if v.IsNil() {
			writeUint(h, 0)
			return
		}
		writeUint(h, uint64(v.Len())+1)
		if v.Len() == 0 || w.seen(h, v) {
			return
		}
		defer w.leave()
		for i := 0; i < v.Len(); i++ {
			w.write(h, v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			writeUint(h, 0)
			return
		}
		writeUint(h, uint64(v.Len())+1)
		if v.Len() == 0 || w.seen(h, v) {
			return
		}
		defer w.leave()
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := fnv.New64a()
			w.write(entry, iter.Key())
			w.write(entry, iter.Value())
			sum += entry.Sum64()
		}
		writeUint(h, sum)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			w.write(h, v.Field(i))
		}
	case reflect.Pointer:
		if v.IsNil() {
			writeUint(h, 0)
			return
		}
		writeUint(h, 1)
		if w.seen(h, v) {
			return
		}
		defer w.leave()
		w.write(h, v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			writeUint(h, 0)
			return
		}
		writeUint(h, 1)
		w.write(h, v.Elem())
	case reflect.Chan, reflect.UnsafePointer:
		// DeepEqual compares these by identity.
		writeUint(h, uint64(v.Pointer()))
	case reflect.Func:
		// Non-nil funcs are never deeply equal, only nil-ness matters.
		if v.IsNil() {
			writeUint(h, 0)
		} else {
			writeUint(h, 1)
		}
	}
}

// seen writes a back reference and reports true when v is already on the
// path. Otherwise v is pushed and must be popped with leave.
func (w *walker) seen(h hash.Hash64, v reflect.Value) bool {
	at := visit{ptr: v.UnsafePointer(), typ: v.Type()}
	for i, p := range w.path {
		if p == at {
			_, _ = h.Write([]byte{'^'})
			writeUint(h, uint64(len(w.path)-i))
			return true
		}
	}
	w.path = append(w.path, at)
	return false
}

func (w *walker) leave() {
	w.path = w.path[:len(w.path)-1]
}

func writeUint(h hash.Hash64, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = h.Write(buf[:])
}

func writeFloat(h hash.Hash64, f float64) {
	if f == 0 {
		f = 0 // -0 and +0 are equal
	}
	writeUint(h, math.Float64bits(f))
}
