package plane

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleKind(t *testing.T) {
	cases := []struct {
		kind SampleKind
		size int
		max  float64
		name string
	}{
		{Uint8, 1, 255, "uint8"},
		{Uint16, 2, 65535, "uint16"},
		{Float32, 4, 1, "float32"},
	}
	for _, c := range cases {
		if c.kind.Size() != c.size || c.kind.Max() != c.max || c.kind.String() != c.name {
			t.Errorf("%v: got size=%d max=%v name=%q", c.kind, c.kind.Size(), c.kind.Max(), c.kind.String())
		}
		got, err := ParseSampleKind(c.name)
		if err != nil || got != c.kind {
			t.Errorf("ParseSampleKind(%q) = %v, %v", c.name, got, err)
		}
	}
	if SampleKind(9).Valid() || SampleKind(9).Size() != 0 {
		t.Error("SampleKind(9) should be invalid")
	}
	if _, err := ParseSampleKind("int32"); err == nil {
		t.Error("ParseSampleKind(int32) should fail")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf[uint8]() != Uint8 || KindOf[uint16]() != Uint16 || KindOf[float32]() != Float32 {
		t.Errorf("KindOf: got %v %v %v", KindOf[uint8](), KindOf[uint16](), KindOf[float32]())
	}
}

func TestNew(t *testing.T) {
	p := New(Uint16, 17, 5)
	if p.Width != 17 || p.Height != 5 {
		t.Errorf("size: got %dx%d, want 17x5", p.Width, p.Height)
	}
	if p.Stride < 34 || p.Stride%RowAlign != 0 {
		t.Errorf("stride %d: want >= 34 and a multiple of %d", p.Stride, RowAlign)
	}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}

	empty := New(Uint8, 0, 10)
	if !empty.Empty() || empty.Extent() != 0 {
		t.Errorf("New(0, 10) should be empty, got %+v", empty)
	}
}

func TestRowAndAccessors(t *testing.T) {
	p := New(Float32, 10, 4)
	row := Row[float32](p, 2)
	if len(row) != 10 {
		t.Fatalf("len(Row) = %d, want 10", len(row))
	}
	row[3] = 1.5
	if got := At[float32](p, 3, 2); got != 1.5 {
		t.Errorf("At(3,2) = %v, want 1.5", got)
	}
	Set[float32](p, 9, 3, -2)
	if got := Row[float32](p, 3)[9]; got != -2 {
		t.Errorf("Row(3)[9] = %v, want -2", got)
	}

	// Out of range access is a no-op.
	Set[float32](p, 10, 0, 7)
	if got := At[float32](p, -1, 0); got != 0 {
		t.Errorf("At(-1,0) = %v, want 0", got)
	}
}

func TestRowKindMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Row[uint16] on a uint8 plane did not panic")
		}
	}()
	Row[uint16](New(Uint8, 4, 4), 0)
}

func TestFromSlice(t *testing.T) {
	data := []uint16{
		1, 2, 3, 0xdead,
		4, 5, 6, 0xbeef,
	}
	p, err := FromSlice(data, 3, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.Stride != 8 || p.Kind != Uint16 {
		t.Errorf("got stride=%d kind=%v", p.Stride, p.Kind)
	}
	if diff := cmp.Diff([]uint16{4, 5, 6}, Row[uint16](p, 1)); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromSlice(data, 3, 3, 4); !errors.Is(err, ErrInvalid) {
		t.Errorf("oversized plane: got %v, want ErrInvalid", err)
	}
	if _, err := FromSlice(data, 5, 1, 4); !errors.Is(err, ErrInvalid) {
		t.Errorf("stride shorter than width: got %v, want ErrInvalid", err)
	}
}

func TestFromBytes(t *testing.T) {
	buf := alignedBytes(64)
	if _, err := FromBytes(buf, Float32, 4, 4, 16); err != nil {
		t.Errorf("aligned float plane: %v", err)
	}
	if _, err := FromBytes(buf[1:], Uint16, 4, 4, 8); !errors.Is(err, ErrInvalid) {
		t.Errorf("misaligned uint16 plane: got %v, want ErrInvalid", err)
	}
	if _, err := FromBytes(buf, Uint16, 4, 4, 9); !errors.Is(err, ErrInvalid) {
		t.Errorf("odd stride: got %v, want ErrInvalid", err)
	}
	if _, err := FromBytes(buf, SampleKind(7), 4, 4, 16); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown kind: got %v, want ErrInvalid", err)
	}
}

func TestSubRows(t *testing.T) {
	p := New(Uint8, 5, 6)
	for y := 0; y < p.Height; y++ {
		Fill(p.SubRows(y, y+1), uint8(y*10))
	}
	band := p.SubRows(2, 5)
	if band.Height != 3 || band.Width != 5 {
		t.Fatalf("band size %dx%d, want 5x3", band.Width, band.Height)
	}
	if got := At[uint8](band, 0, 0); got != 20 {
		t.Errorf("band(0,0) = %d, want 20", got)
	}
	// Writes through the band are visible in the parent.
	Set[uint8](band, 4, 2, 99)
	if got := At[uint8](p, 4, 4); got != 99 {
		t.Errorf("parent(4,4) = %d, want 99", got)
	}
	if err := band.Validate(); err != nil {
		t.Errorf("band.Validate: %v", err)
	}
	if len(band.Pix) != band.Extent() {
		t.Errorf("band does not end at its last row: len=%d extent=%d", len(band.Pix), band.Extent())
	}
	if e := p.SubRows(3, 3); !e.Empty() {
		t.Error("SubRows(3,3) should be empty")
	}
}

func TestCloneAndOverlaps(t *testing.T) {
	p := New(Uint16, 7, 3)
	Fill[uint16](p, 1234)
	c := p.Clone()
	if diff := cmp.Diff(Row[uint16](p, 2), Row[uint16](c, 2)); diff != "" {
		t.Errorf("Clone mismatch (-orig +clone):\n%s", diff)
	}
	if Overlaps(p, c) {
		t.Error("clone overlaps its source")
	}
	if !Overlaps(p, p.SubRows(1, 2)) {
		t.Error("band does not overlap its parent")
	}
	if Overlaps(p.SubRows(0, 1), p.SubRows(1, 3)) {
		t.Error("adjacent bands overlap")
	}
}
