package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/shots/sh010", "/shots/sh010"},
		{"single trailing slash", "/shots/sh010/", "/shots/sh010"},
		{"multiple trailing slashes", "/shots/sh010///", "/shots/sh010"},
		{"root path", "/", "/"},
		{"relative path", "renders", "renders"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Action(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		wantErr bool
	}{
		{"list is valid", ActionList, false},
		{"convert is valid", ActionConvert, false},
		{"encode is valid", ActionEncode, false},
		{"view is valid", ActionView, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "transcode", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.Action = tt.action
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Container(t *testing.T) {
	tests := []struct {
		name    string
		ctr     Container
		wantErr bool
	}{
		{"mp4 is valid", ContainerMP4, false},
		{"mov is valid", ContainerMOV, false},
		{"mkv is valid", ContainerMKV, false},
		{"empty is invalid", "", true},
		{"avi is invalid", "avi", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Container = tt.ctr
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Pad(t *testing.T) {
	tests := []struct {
		name    string
		pad     string
		wantErr bool
	}{
		{"printf", "%", false},
		{"hash", "#", false},
		{"at sign", "@", false},
		{"empty drops token", "", false},
		{"two characters", "##", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Pad = tt.pad
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Framerate(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"integer", "24", false},
		{"ntsc", "23.976", false},
		{"zero", "0", true},
		{"negative", "-24", true},
		{"garbage", "fast", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Framerate = tt.rate
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresInputDir(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty InputDir")
	}
	cfg.InputDir = "/shots"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGlobList(t *testing.T) {
	var g globList
	if err := g.Set("*.exr"); err != nil {
		t.Fatal(err)
	}
	if err := g.Set("*.dpx"); err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "*.exr,*.dpx" {
		t.Errorf("String() = %q", got)
	}
}

func TestArgList(t *testing.T) {
	var args []string
	a := argList{&args}
	if err := a.Set("--compression zip -q 90"); err != nil {
		t.Fatal(err)
	}
	want := []string{"--compression", "zip", "-q", "90"}
	if len(args) != len(want) {
		t.Fatalf("Set() produced %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"long with equals", []string{"--config=/tmp/fs.yaml", "in"}, "/tmp/fs.yaml"},
		{"long with value", []string{"--config", "/tmp/fs.yaml", "in"}, "/tmp/fs.yaml"},
		{"absent", []string{"-v", "in"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configPathFromArgs(tt.args); got != tt.want {
				t.Errorf("configPathFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
