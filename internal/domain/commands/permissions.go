package commands

import (
	"io/fs"
	"os"
	"path/filepath"
)

const writeBits = 0o222

// makeReadOnly strips the write permission from every file and directory
// under root. Installed dependencies are immutable.
func makeReadOnly(root string) error {
	return chmodTree(root, func(mode fs.FileMode) fs.FileMode {
		return mode &^ writeBits
	})
}

// makeWritable restores the owner write bit under root so the tree can be
// updated or removed again.
func makeWritable(root string) error {
	return chmodTree(root, func(mode fs.FileMode) fs.FileMode {
		return mode | 0o200
	})
}

func chmodTree(root string, transform func(fs.FileMode) fs.FileMode) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			return infoErr
		}
		return os.Chmod(path, transform(info.Mode().Perm()))
	})
}
