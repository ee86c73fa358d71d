package migrate

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
)

var (
	sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)
)

// ValidateDir validates migration filenames + basic SQL headers under dir
// of fsys.
func ValidateDir(fsys fs.FS, dir string) error {
	_, err := scanDir(fsys, dir)
	return err
}

// ValidateTree validates every dialect directory under root and requires
// them to carry the same migration files.
func ValidateTree(fsys fs.FS, root string) error {
	var (
		want      map[string]string
		reference string
	)
	for _, dialect := range Dialects {
		dir := path.Join(root, Subdir(dialect))
		got, err := scanDir(fsys, dir)
		if err != nil {
			return fmt.Errorf("%s: %w", dialect, err)
		}
		if want == nil {
			want, reference = got, dialect
			continue
		}
		if missing := diffNames(want, got); len(missing) > 0 {
			return fmt.Errorf("%s is missing migrations present in %s: %s", dialect, reference, strings.Join(missing, ", "))
		}
		if extra := diffNames(got, want); len(extra) > 0 {
			return fmt.Errorf("%s has migrations absent from %s: %s", dialect, reference, strings.Join(extra, ", "))
		}
	}
	return nil
}

// scanDir returns version -> filename for every migration in dir.
func scanDir(fsys fs.FS, dir string) (map[string]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is required")
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}

	seen := map[string]string{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name

		full := path.Join(dir, name)
		b, err := fs.ReadFile(fsys, full)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", full, err)
		}

		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Up\"", name)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Down\"", name)
		}
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("no migrations found in %q", dir)
	}
	return seen, nil
}

// diffNames lists filenames in a whose version is absent from b or named
// differently there.
func diffNames(a, b map[string]string) []string {
	var out []string
	for version, name := range a {
		if b[version] != name {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
