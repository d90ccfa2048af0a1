package types

import "testing"

func TestSelector_Index(t *testing.T) {
	cases := []struct {
		s    Selector
		want int
	}{
		{SelAll, -1},
		{SelCh1, 0},
		{SelCh2, 1},
		{SelCh3, 2},
		{SelCh4, 3},
		{Selector(5), -1},
		{Selector(255), -1},
	}
	for _, c := range cases {
		if got := c.s.Index(); got != c.want {
			t.Fatalf("%v.Index()=%d want %d", c.s, got, c.want)
		}
	}
}

func TestSelectorFor(t *testing.T) {
	for i := 0; i < NumChannels; i++ {
		if got := SelectorFor(i).Index(); got != i {
			t.Fatalf("SelectorFor(%d).Index()=%d", i, got)
		}
	}
	if SelectorFor(-1) != SelAll || SelectorFor(NumChannels) != SelAll {
		t.Fatalf("out-of-range index should map to SelAll")
	}
}
