package shaders

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ParseEntryName splits a file name into its name and type. ok is false unless the
// file name contains exactly one dot.
func ParseEntryName(fileName string) (name, shaderType string, ok bool) {
	parts := strings.Split(fileName, ".")
	if len(parts) != 2 || parts[1] == "" {
		return parts[0], "", false
	}

	return parts[0], parts[1], true
}

// ReadGroups reads every immediate subdirectory of root as a shader group. Plain files in
// root are ignored. The result is sorted by name.
func ReadGroups(root string) ([]*Group, error) {
	items, err := os.ReadDir(root)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to read shader directory %s", root)
	}

	groups := make([]*Group, 0, len(items))
	for _, item := range items {
		path := filepath.Join(root, item.Name())
		info, err := statEntry(path)
		if err != nil {
			return nil, err
		}

		if info == nil || !info.IsDir() {
			continue
		}

		group, err := ReadGroup(path)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// ReadGroup lists the files in dir along with their modification times
func ReadGroup(dir string) (*Group, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to read shader group %s", dir)
	}

	group := &Group{
		Name:    filepath.Base(dir),
		Path:    dir,
		Entries: make([]*Entry, 0, len(items)),
	}

	for _, item := range items {
		path := filepath.Join(dir, item.Name())
		info, err := statEntry(path)
		if err != nil {
			return nil, err
		}

		if info == nil || info.IsDir() {
			continue
		}

		name, shaderType, _ := ParseEntryName(item.Name())
		group.Entries = append(group.Entries, &Entry{
			FileName: item.Name(),
			Name:     name,
			Type:     shaderType,
			Path:     path,
			ModTime:  info.ModTime(),
		})
	}

	return group, nil
}

// statEntry follows symlinks. Dangling links are reported as a nil FileInfo.
func statEntry(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "Could not stat %s", path)
	}

	return info, nil
}

// Match returns the first entry whose name equals the source's type. Note that this can be any
// file (even the source itself), not just .spv files.
func (g *Group) Match(source *Entry) *Entry {
	for _, entry := range g.Entries {
		if entry.Name == source.Type {
			return entry
		}
	}

	return nil
}

// OutputPath returns the path the compiler should write the binary for source to
func (g *Group) OutputPath(source, match *Entry) string {
	if match != nil {
		return match.Path
	}

	return filepath.Join(g.Path, source.Type+"."+CompiledType)
}
