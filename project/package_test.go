package project

import "testing"

func TestInfoFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want PackageInfo
		ok   bool
	}{
		{
			name: "live",
			path: "/overlay/chromeos-base/shill/shill-9999.ebuild",
			want: PackageInfo{Category: "chromeos-base", Package: "shill", Version: "9999"},
			ok:   true,
		},
		{
			name: "pinned with revision",
			path: "/overlay/chromeos-base/shill/shill-0.0.5-r1234.ebuild",
			want: PackageInfo{Category: "chromeos-base", Package: "shill", Version: "0.0.5-r1234"},
			ok:   true,
		},
		{
			name: "dashed package name",
			path: "/overlay/dev-go/go-tools/go-tools-1.2.ebuild",
			want: PackageInfo{Category: "dev-go", Package: "go-tools", Version: "1.2"},
			ok:   true,
		},
		{
			name: "relative path",
			path: "chromeos-base/shill/shill-9999.ebuild",
			want: PackageInfo{Category: "chromeos-base", Package: "shill", Version: "9999"},
			ok:   true,
		},
		{name: "file name mismatch", path: "/overlay/c/foo/bar-1.0.ebuild"},
		{name: "missing version", path: "/overlay/c/foo/foo-.ebuild"},
		{name: "nonnumeric version", path: "/overlay/c/foo/foo-bar.ebuild"},
		{name: "not an ebuild", path: "/overlay/c/foo/foo-1.0.eclass"},
		{name: "no category", path: "shill/shill-9999.ebuild"},
		{name: "bare file name", path: "shill-9999.ebuild"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InfoFromPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("info = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsLive(t *testing.T) {
	if !(PackageInfo{Version: "9999"}).IsLive() {
		t.Error("9999 not live")
	}
	if (PackageInfo{Version: "0.0.5-r1234"}).IsLive() {
		t.Error("0.0.5-r1234 reported live")
	}
}
