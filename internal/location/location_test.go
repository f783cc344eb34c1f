package location

import (
	"path/filepath"
	"testing"
)

func TestResolveSymbolicNames(t *testing.T) {
	r := NewResolverWithHome("/home/alex")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"downloads", "downloads", "/home/alex/Downloads"},
		{"desktop", "desktop", "/home/alex/Desktop"},
		{"documents", "documents", "/home/alex/Documents"},
		{"pictures", "pictures", "/home/alex/Pictures"},
		{"music", "music", "/home/alex/Music"},
		{"videos", "videos", "/home/alex/Videos"},

		// Case-insensitive and trimmed.
		{"uppercase", "DOWNLOADS", "/home/alex/Downloads"},
		{"mixed case", "DeskTop", "/home/alex/Desktop"},
		{"surrounding whitespace", "  downloads  ", "/home/alex/Downloads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveLiteralPaths(t *testing.T) {
	r := NewResolverWithHome("/home/alex")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"absolute", "/var/tmp/stuff", "/var/tmp/stuff"},
		{"tilde", "~/projects", "/home/alex/projects"},
		{"tilde only", "~", "/home/alex"},
		{"tilde deep", "~/a/b/c.txt", "/home/alex/a/b/c.txt"},
		// Resolves without requiring existence.
		{"nonexistent absolute", "/definitely/not/here", "/definitely/not/here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveRelativeBecomesAbsolute(t *testing.T) {
	r := NewResolverWithHome("/home/alex")

	got := r.Resolve("some/relative/dir")
	if !filepath.IsAbs(got) {
		t.Errorf("Resolve of relative path returned non-absolute %q", got)
	}
}

func TestOverride(t *testing.T) {
	r := NewResolverWithHome("/home/alex")
	r.Override("Downloads", "/mnt/bulk/dl")

	if got := r.Resolve("downloads"); got != "/mnt/bulk/dl" {
		t.Errorf("Resolve(downloads) after override = %q, want /mnt/bulk/dl", got)
	}

	// Overrides expand the home shorthand too.
	r.Override("music", "~/Audio")
	if got := r.Resolve("music"); got != "/home/alex/Audio" {
		t.Errorf("Resolve(music) after override = %q, want /home/alex/Audio", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := "/home/alex"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde slash", "~/", home},
		{"tilde path", "~/Documents", "/home/alex/Documents"},
		{"absolute unchanged", "/usr/local", "/usr/local"},
		{"relative unchanged", "a/b", "a/b"},
		{"tilde in middle unchanged", "/x/~/y", "/x/~/y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.path, home); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
