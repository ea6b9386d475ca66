package utils

import "testing"

func TestValidateFileExtension(t *testing.T) {
	allowed := []string{".vrma", ".glb", ".gltf"}

	cases := []struct {
		name     string
		filename string
		allowed  []string
		want     bool
	}{
		{"allowed lowercase", "wave.vrma", allowed, true},
		{"allowed uppercase", "WAVE.GLB", allowed, true},
		{"not allowed", "wave.exe", allowed, false},
		{"no extension", "wave", allowed, false},
		{"empty allowlist permits all", "wave.exe", nil, true},
		{"wildcard permits all", "wave.exe", []string{"*"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateFileExtension(tc.filename, tc.allowed)
			if got != tc.want {
				t.Fatalf("ValidateFileExtension(%q): want=%v got=%v", tc.filename, tc.want, got)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	if !ValidateFileSize(100, 100) {
		t.Fatalf("size equal to limit should pass")
	}
	if ValidateFileSize(101, 100) {
		t.Fatalf("size above limit should fail")
	}
	if !ValidateFileSize(500, 0) {
		t.Fatalf("zero limit should disable the check")
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" .vrma, .glb ,,.gltf ")
	want := []string{".vrma", ".glb", ".gltf"}
	if len(got) != len(want) {
		t.Fatalf("want=%v got=%v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: want=%q got=%q", i, want[i], got[i])
		}
	}
}
