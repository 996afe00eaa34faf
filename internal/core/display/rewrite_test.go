package display

import "testing"

func TestHostRewriter_Rewrite(t *testing.T) {
	r := NewHostRewriter(DefaultSourceHost, DefaultTargetHost)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites canonical host",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42",
			want: "https://inv.nadeko.net/watch?v=dQw4w9WgXcQ&t=42",
		},
		{
			name: "rewrites exactly once",
			in:   "https://www.youtube.com/redirect?q=https://www.youtube.com/x",
			want: "https://inv.nadeko.net/redirect?q=https://www.youtube.com/x",
		},
		{
			name: "leaves other hosts unchanged",
			in:   "https://youtu.be/dQw4w9WgXcQ",
			want: "https://youtu.be/dQw4w9WgXcQ",
		},
		{
			name: "empty url",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Rewrite(tt.in); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHostRewriter_Disabled(t *testing.T) {
	in := "https://www.youtube.com/watch?v=a"
	for _, r := range []HostRewriter{{}, {From: DefaultSourceHost}, {To: DefaultTargetHost}} {
		if r.Enabled() {
			t.Errorf("%+v should be disabled", r)
		}
		if got := r.Rewrite(in); got != in {
			t.Errorf("%+v rewrote %q to %q", r, in, got)
		}
	}
}
