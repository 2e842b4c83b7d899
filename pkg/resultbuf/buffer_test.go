// SPDX-License-Identifier: MPL-2.0

package resultbuf

import (
	"strings"
	"sync"
	"testing"

	"github.com/powcalc/powcalc/pkg/bigpow"
)

func TestExportWritesTerminatedContent(t *testing.T) {
	t.Parallel()

	var b Buffer
	got := b.Export(bigpow.Power(2, 10))

	if string(got) != "1024" {
		t.Errorf("Export() = %q, want %q", got, "1024")
	}
	if b.Cap() < len(got)+1 {
		t.Errorf("Cap() = %d, want at least %d", b.Cap(), len(got)+1)
	}
	if term := b.data[b.Len()]; term != 0 {
		t.Errorf("byte after content = %d, want NUL", term)
	}
}

func TestExportIdempotent(t *testing.T) {
	t.Parallel()

	var b Buffer
	v := bigpow.Power(3, 50)

	first := string(b.Export(v))
	second := string(b.Export(v))
	if first != second {
		t.Errorf("Export() not idempotent: %q then %q", first, second)
	}
	if first != "717897987691852588770249" {
		t.Errorf("Export() = %q, want %q", first, "717897987691852588770249")
	}
}

func TestExportGrowsWithoutStaleDigits(t *testing.T) {
	t.Parallel()

	var b Buffer
	var grows [][2]int
	onGrow := func(oldCap, newCap int) { grows = append(grows, [2]int{oldCap, newCap}) }

	short := b.ExportNotify(bigpow.Power(5, 3), onGrow)
	if string(short) != "125" {
		t.Fatalf("short Export() = %q, want %q", short, "125")
	}

	long := bigpow.Power(2, 200)
	got := b.ExportNotify(long, onGrow)
	if string(got) != long.String() {
		t.Errorf("long Export() = %q, want %q", got, long.String())
	}
	if b.String() != long.String() {
		t.Errorf("String() = %q, want %q", b.String(), long.String())
	}

	if len(grows) != 2 {
		t.Fatalf("grow callbacks = %v, want 2", grows)
	}
	if grows[0] != [2]int{0, 4} || grows[1] != [2]int{4, 62} {
		t.Errorf("grow callbacks = %v, want [[0 4] [4 62]]", grows)
	}
}

func TestExportNeverShrinks(t *testing.T) {
	t.Parallel()

	var b Buffer
	b.Export(bigpow.Power(2, 200))
	capAfterLong := b.Cap()

	got := b.Export(bigpow.Power(2, 10))
	if string(got) != "1024" {
		t.Errorf("Export() after long result = %q, want %q", got, "1024")
	}
	if b.Cap() != capAfterLong {
		t.Errorf("Cap() = %d after short export, want unchanged %d", b.Cap(), capAfterLong)
	}
	if b.String() != "1024" {
		t.Errorf("String() = %q, want %q", b.String(), "1024")
	}
}

func TestReleaseThenExport(t *testing.T) {
	t.Parallel()

	var b Buffer
	b.Export(bigpow.Power(7, 40))
	b.Release()

	if b.Allocated() || b.Cap() != 0 || b.Len() != 0 || b.Pointer() != 0 {
		t.Fatalf("after Release: allocated=%v cap=%d len=%d", b.Allocated(), b.Cap(), b.Len())
	}

	got := b.Export(bigpow.Power(9, 0))
	if string(got) != "1" {
		t.Errorf("Export() after Release = %q, want %q", got, "1")
	}
	if b.Pointer() == 0 {
		t.Error("Pointer() = 0 after Export, want non-zero")
	}
}

func TestReleaseUnallocatedIsNoop(t *testing.T) {
	t.Parallel()

	var b Buffer
	b.Release()
	b.Release()

	if b.String() != "" || b.Cap() != 0 {
		t.Errorf("unallocated buffer: String()=%q Cap()=%d", b.String(), b.Cap())
	}
}

func TestDigitCountMatchesExportLength(t *testing.T) {
	t.Parallel()

	var b Buffer
	for _, tc := range []struct{ base, exponent uint64 }{{2, 200}, {10, 0}, {10, 1}, {0, 5}, {99, 99}} {
		v := bigpow.Power(tc.base, tc.exponent)
		got := b.Export(v)
		if v.DigitCount() != len(got) {
			t.Errorf("Power(%d, %d): DigitCount() = %d, len(Export()) = %d", tc.base, tc.exponent, v.DigitCount(), len(got))
		}
		if strings.HasPrefix(string(got), "0") && len(got) > 1 {
			t.Errorf("Power(%d, %d): leading zero in %q", tc.base, tc.exponent, got)
		}
	}
}

func TestConcurrentExportAndRelease(t *testing.T) {
	t.Parallel()

	var b Buffer
	values := []bigpow.DigitVector{bigpow.Power(2, 10), bigpow.Power(2, 200), bigpow.Power(3, 50)}
	valid := map[string]bool{"": true}
	for _, v := range values {
		valid[v.String()] = true
	}

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				switch (i + j) % 4 {
				case 3:
					b.Release()
				default:
					b.Export(values[(i+j)%len(values)])
				}
				if s := b.String(); !valid[s] {
					t.Errorf("torn read: %q", s)
					return
				}
			}
		}()
	}
	wg.Wait()
}
