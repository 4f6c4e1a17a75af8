// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileutil writes generated files in place without leaving
// partial output behind.
package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to dst through a temporary file in the same
// directory that is renamed into place, so readers see either the old or
// the new content. An existing file keeps its permissions; a new one gets
// perm.
func WriteFile(dst string, data []byte, perm os.FileMode) (err error) {
	if st, err := os.Stat(dst); err == nil {
		perm = st.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// SameContent reports whether the file at path holds exactly data. A
// missing file is reported as different.
func SameContent(path string, data []byte) (bool, error) {
	cur, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bytes.Equal(cur, data), nil
}

// WriteIfChanged writes data to dst unless dst already holds it. It
// reports whether a write happened.
func WriteIfChanged(dst string, data []byte, perm os.FileMode) (bool, error) {
	same, err := SameContent(dst, data)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}
	if err := WriteFile(dst, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
