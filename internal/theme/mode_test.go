package theme

import "testing"

func TestParseBaseMode(t *testing.T) {
	tests := []struct {
		in   string
		want BaseMode
	}{
		{"light", ModeLight},
		{"dark", ModeDark},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"sepia", ModeAuto},
		{"LIGHT", ModeAuto},
	}
	for _, tt := range tests {
		if got := ParseBaseMode(tt.in); got != tt.want {
			t.Errorf("ParseBaseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestBaseModeNext(t *testing.T) {
	order := []BaseMode{ModeLight, ModeDark, ModeAuto, ModeLight}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func TestResolve(t *testing.T) {
	detectLight := func() EffectiveMode { return EffectiveLight }
	detectDark := func() EffectiveMode { return EffectiveDark }

	tests := []struct {
		name   string
		mode   BaseMode
		detect DetectFunc
		want   EffectiveMode
	}{
		{"light ignores detect", ModeLight, detectDark, EffectiveLight},
		{"dark ignores detect", ModeDark, detectLight, EffectiveDark},
		{"auto consults detect light", ModeAuto, detectLight, EffectiveLight},
		{"auto consults detect dark", ModeAuto, detectDark, EffectiveDark},
		{"auto nil detect defaults dark", ModeAuto, nil, EffectiveDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.mode, tt.detect); got != tt.want {
				t.Errorf("Resolve(%s) = %s, want %s", tt.mode, got, tt.want)
			}
		})
	}
}
