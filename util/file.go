package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadJsonTree reads a JSON object file into a generic tree. Unknown keys
// survive a later WriteJsonTree unchanged, which is what allows rewriting a
// config file owned by another application without dropping its fields.
func ReadJsonTree(file string) (map[string]any, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bs, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tree := make(map[string]any)
	if err := json.Unmarshal(bs, &tree); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	return tree, nil
}

// WriteJsonTree writes a generic JSON tree to a file, pretty-printed,
// creating parent directories if required. The write is a plain truncating
// overwrite, matching the last-writer-wins contract of the target file.
func WriteJsonTree(file string, tree map[string]any) error {
	configDir, _ := filepath.Split(file)
	if configDir != "" {
		if err := os.MkdirAll(configDir, 0o750); err != nil {
			return err
		}
	}

	bs, err := json.MarshalIndent(tree, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	return os.WriteFile(file, bs, 0o644)
}

// CopyFileContents copies contents of the given src file to the dst file
func CopyFileContents(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return
	}
	defer func() {
		cErr := out.Close()
		if err == nil {
			err = cErr
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return
	}
	err = out.Sync()
	return
}
