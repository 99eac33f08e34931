// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package xmldict

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ianlewis/go-xmldict/internal/testutil"
)

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeTempDir(t, []testutil.File{
		{Path: "b.xml", Data: "<a/>"},
		{Path: "a.XML", Data: "<a/>"},
		{Path: "a.xml.bak", Data: "<a/>"},
		{Path: "notes.txt", Data: "notes"},
		{Path: "sub/c.xml", Data: "<a/>"},
		{Path: "sub/deeper/d.xml", Data: "<a/>"},
		{Path: "sub/e.html", Data: "<a/>"},
		{Path: "z.xml", Data: "<a/>"},
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "empty.xml"), 0o755))

	paths, err := Discover(dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "a.XML"),
		filepath.Join(dir, "b.xml"),
		filepath.Join(dir, "sub", "c.xml"),
		filepath.Join(dir, "sub", "deeper", "d.xml"),
		filepath.Join(dir, "z.xml"),
	}
	if diff := cmp.Diff(expected, paths); diff != "" {
		t.Fatalf("Discover (-want, +got):\n%s", diff)
	}
}

func TestDiscover_empty(t *testing.T) {
	t.Parallel()

	paths, err := Discover(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestDiscover_notDir(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeTempDir(t, []testutil.File{
		{Path: "a.xml", Data: "<a/>"},
	})

	_, err := Discover(filepath.Join(dir, "a.xml"))
	require.ErrorIs(t, err, ErrDiscover)

	_, err = Discover(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, ErrDiscover)
}

func TestDiscover_unreadableSubdir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := testutil.MakeTempDir(t, []testutil.File{
		{Path: "a.xml", Data: "<a/>"},
		{Path: "locked/b.xml", Data: "<a/>"},
	})
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(locked, 0o755)
	})

	paths, err := Discover(dir)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{filepath.Join(dir, "a.xml")}, paths); diff != "" {
		t.Fatalf("Discover (-want, +got):\n%s", diff)
	}
}

func TestDiscover_symlinkRoot(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need extra privileges")
	}

	target := testutil.MakeTempDir(t, []testutil.File{
		{Path: "a.xml", Data: "<a/>"},
		{Path: "sub/b.xml", Data: "<a/>"},
	})
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(target, link))

	paths, err := Discover(link)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(link, "a.xml"),
		filepath.Join(link, "sub", "b.xml"),
	}
	if diff := cmp.Diff(expected, paths); diff != "" {
		t.Fatalf("Discover (-want, +got):\n%s", diff)
	}
}
